package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"text/tabwriter"

	"parkospace/config"
	"parkospace/internal/client/app"
	"parkospace/internal/client/view"
	"parkospace/internal/domain/entity"

	"github.com/pkg/errors"
)

func defaultReference(cfg *config.ListingConfig) (entity.GeoPoint, error) {
	point, err := entity.NewGeoPoint(cfg.DefaultLat, cfg.DefaultLng)
	if err != nil {
		return entity.GeoPoint{}, errors.Wrap(err, "invalid default location")
	}

	return point, nil
}

func handleNearby(ctx context.Context, args []string) error {
	fs, common := newFlagSet("nearby")
	lat := fs.Float64("lat", math.NaN(), "Latitude of the reference point")
	lng := fs.Float64("lng", math.NaN(), "Longitude of the reference point")
	radius := fs.Float64("radius", -1, "Search radius in km")
	showMap := fs.Bool("map", false, "Draw a map of the results")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse nearby flags")
	}

	s, err := newSession(common)
	if err != nil {
		return err
	}

	var locator app.Locator
	if !math.IsNaN(*lat) || !math.IsNaN(*lng) {
		point, err := entity.NewGeoPoint(*lat, *lng)
		if err != nil {
			return errors.Wrap(err, "invalid -lat/-lng")
		}
		locator = app.LocatorFunc(func(context.Context) (entity.GeoPoint, error) {
			return point, nil
		})
	}

	explorer := s.explorer(locator)
	defer explorer.Close()

	if *radius >= 0 {
		if err := explorer.SetRadius(*radius); err != nil {
			return err
		}
	}

	if locator != nil {
		err = explorer.Locate(ctx)
	} else {
		err = explorer.Refresh(ctx)
	}
	if err != nil {
		return err
	}

	return s.printResults(os.Stdout, explorer, *showMap)
}

func handleSearch(ctx context.Context, args []string) error {
	fs, common := newFlagSet("search")
	query := fs.String("q", "", "Place, address or landmark to search")
	radius := fs.Float64("radius", -1, "Search radius in km")
	showMap := fs.Bool("map", false, "Draw a map of the results")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse search flags")
	}

	s, err := newSession(common)
	if err != nil {
		return err
	}

	explorer := s.explorer(nil)
	defer explorer.Close()

	if *radius >= 0 {
		if err := explorer.SetRadius(*radius); err != nil {
			return err
		}
	}
	if err := explorer.Search(ctx, *query); err != nil {
		return err
	}

	return s.printResults(os.Stdout, explorer, *showMap)
}

func (s *session) printResults(w io.Writer, explorer *app.Explorer, showMap bool) error {
	snap := s.store.Snapshot()
	frame := explorer.Frame()

	fmt.Fprintf(w, "%d spaces within %gkm of %s\n\n", len(frame.Sidebar), snap.RadiusKm, snap.Reference)
	if len(frame.Sidebar) > 0 {
		printSidebar(w, frame.Sidebar)
	}
	if showMap {
		fmt.Fprintln(w)
		s.screen.Draw(w)
	}

	return nil
}

func printSidebar(w io.Writer, items []view.SidebarItem) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tTITLE\tSTATUS\tDAILY\tDIST\tSIZE\tLANDMARK\tCALL")
	for i, item := range items {
		call := item.CallURL
		if !item.Actionable {
			call = "-"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			i+1, item.Title, item.Status, item.Daily, item.Distance, item.Size, item.Landmark, call)
	}
	_ = tw.Flush()

	for i, item := range items {
		if item.Actionable {
			fmt.Fprintf(w, "  %d. directions: %s\n", i+1, item.NavigateURL)
		}
	}
}
