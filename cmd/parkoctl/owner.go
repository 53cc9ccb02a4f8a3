package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"parkospace/internal/client/form"
	"parkospace/internal/client/view"
	"parkospace/internal/domain/entity"
	"parkospace/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

func handlePortfolio(ctx context.Context, args []string) error {
	fs, common := newFlagSet("portfolio")
	phone := fs.String("phone", "", "Owner phone")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse portfolio flags")
	}
	if strings.TrimSpace(*phone) == "" {
		return errors.New("-phone is required")
	}

	s, err := newSession(common)
	if err != nil {
		return err
	}

	listings, err := s.api.Portfolio(ctx, strings.TrimSpace(*phone))
	if err != nil {
		return err
	}

	printPortfolio(view.DerivePortfolio(listings, uuid.Nil))

	return nil
}

func printPortfolio(items []view.PortfolioItem) {
	if len(items) == 0 {
		fmt.Println("No listings yet.")

		return
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tSTATUS\tHOURLY\tDAILY\tMONTHLY\tSIZE")
	for _, item := range items {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			item.ID, item.Title, item.Status, item.Hourly, item.Daily, item.Monthly, item.Size)
	}
	_ = tw.Flush()
}

func handleMapLink(ctx context.Context, args []string) error {
	fs, common := newFlagSet("maplink")
	rawURL := fs.String("url", "", "Shared map link")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse maplink flags")
	}

	s, err := newSession(common)
	if err != nil {
		return err
	}

	place, err := s.api.ParseMapURL(ctx, strings.TrimSpace(*rawURL))
	if err != nil {
		return err
	}

	fmt.Printf("%s\n%s\n", place.Point, place.Address)

	return nil
}

func handleQRCode(ctx context.Context, args []string) error {
	fs, common := newFlagSet("qrcode")
	rawID := fs.String("id", "", "Listing ID")
	out := fs.String("out", "", "Output file (default <id>.png)")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse qrcode flags")
	}

	id, err := uuid.Parse(*rawID)
	if err != nil {
		return errors.Wrap(err, "invalid -id")
	}
	path := *out
	if path == "" {
		path = id.String() + ".png"
	}

	s, err := newSession(common)
	if err != nil {
		return err
	}

	png, err := s.api.QRCode(ctx, id)
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Clean(path), png, 0o644); err != nil {
		return errors.Wrap(err, "write qrcode")
	}

	fmt.Printf("Saved %s (%s)\n", path, util.FormatBytes(int64(len(png))))

	return nil
}

func handleLogin(ctx context.Context, args []string) error {
	fs, common := newFlagSet("login")
	name := fs.String("name", "", "Owner name")
	phone := fs.String("phone", "", "Owner phone")
	email := fs.String("email", "", "Email that receives the code")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse login flags")
	}

	s, err := newSession(common)
	if err != nil {
		return err
	}

	signup := form.Signup{Name: *name, Phone: *phone, Email: *email}
	dashboard := s.dashboard(nil)
	if err := dashboard.SendOTP(ctx, signup); err != nil {
		return err
	}

	code, err := s.prompt("Code: ")
	if err != nil {
		return errors.Wrap(err, "read code")
	}
	if err := dashboard.Verify(ctx, signup, code); err != nil {
		return err
	}

	snap := s.store.Snapshot()
	fmt.Printf("Welcome %s\n", snap.Session.Owner.Name)
	fmt.Printf("token: %s\n", snap.Session.Token)
	printPortfolio(dashboard.Portfolio())

	return nil
}

// ownerFlags identify a logged in owner.
type ownerFlags struct {
	token *string
	phone *string
}

func addOwnerFlags(fs *flag.FlagSet) ownerFlags {
	return ownerFlags{
		token: fs.String("token", os.Getenv("PARKOSPACE_TOKEN"), "Session token from login"),
		phone: fs.String("phone", "", "Owner phone"),
	}
}

func (o ownerFlags) session() (*entity.OwnerSession, error) {
	if strings.TrimSpace(*o.token) == "" || strings.TrimSpace(*o.phone) == "" {
		return nil, errors.New("-token and -phone are required")
	}

	return &entity.OwnerSession{
		Owner: entity.Owner{Phone: strings.TrimSpace(*o.phone)},
		Token: strings.TrimSpace(*o.token),
	}, nil
}

func handlePublish(ctx context.Context, args []string) error {
	fs, common := newFlagSet("publish")
	owner := addOwnerFlags(fs)
	rawID := fs.String("id", "", "Listing to update; empty creates a new one")
	title := fs.String("title", "", "Title")
	desc := fs.String("desc", "", "Description")
	landmark := fs.String("landmark", "", "Area or landmark")
	length := fs.Float64("length", 0, "Length in meters")
	breadth := fs.Float64("breadth", 0, "Breadth in meters")
	hourly := fs.Float64("hourly", 0, "Hourly price")
	daily := fs.Float64("daily", 0, "Daily price")
	monthly := fs.Float64("monthly", 0, "Monthly price (default area based)")
	amenities := fs.String("amenities", "", "Comma separated amenities")
	sold := fs.Bool("sold", false, "Mark as sold")
	mapLink := fs.String("maplink", "", "Map link with the exact location")
	lat := fs.Float64("lat", math.NaN(), "Approximate latitude used when no map link is given")
	lng := fs.Float64("lng", math.NaN(), "Approximate longitude used when no map link is given")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse publish flags")
	}

	ownerSession, err := owner.session()
	if err != nil {
		return err
	}

	s, err := newSession(common)
	if err != nil {
		return err
	}
	if !math.IsNaN(*lat) || !math.IsNaN(*lng) {
		point, err := entity.NewGeoPoint(*lat, *lng)
		if err != nil {
			return errors.Wrap(err, "invalid -lat/-lng")
		}
		s.moveTo(point)
	}

	dashboard := s.dashboard(nil)
	dashboard.Restore(ownerSession)

	var fields form.Fields
	if *rawID != "" {
		id, err := uuid.Parse(*rawID)
		if err != nil {
			return errors.Wrap(err, "invalid -id")
		}
		if err := dashboard.LoadPortfolio(ctx); err != nil {
			return err
		}
		if fields, err = dashboard.Edit(id); err != nil {
			return err
		}
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["title"] {
		fields.Title = *title
	}
	if set["desc"] {
		fields.Desc = *desc
	}
	if set["landmark"] {
		fields.AreaLandmark = *landmark
	}
	if set["length"] {
		fields.Length = *length
	}
	if set["breadth"] {
		fields.Breadth = *breadth
	}
	if set["hourly"] {
		fields.Hourly = *hourly
	}
	if set["daily"] {
		fields.Daily = *daily
	}
	if set["monthly"] {
		fields.Monthly = *monthly
		fields.MonthlyEdited = true
	}
	if set["amenities"] {
		fields.Amenities = splitList(*amenities)
	}
	if set["sold"] {
		fields.IsSold = *sold
	}

	if *mapLink != "" {
		if _, err := dashboard.ParseMapLink(ctx, *mapLink); err != nil {
			return err
		}
	}

	listing, err := dashboard.Submit(ctx, fields)
	if err != nil {
		return err
	}

	fmt.Printf("%s  %s  %s  monthly %s\n", listing.ID, listing.Title, listing.Location, util.FormatRupees(listing.Pricing.Monthly))

	return nil
}

func handleRemove(ctx context.Context, args []string) error {
	fs, common := newFlagSet("remove")
	owner := addOwnerFlags(fs)
	rawID := fs.String("id", "", "Listing to delete")
	yes := fs.Bool("yes", false, "Do not ask for confirmation")
	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse remove flags")
	}

	id, err := uuid.Parse(*rawID)
	if err != nil {
		return errors.Wrap(err, "invalid -id")
	}
	ownerSession, err := owner.session()
	if err != nil {
		return err
	}

	s, err := newSession(common)
	if err != nil {
		return err
	}
	s.assumeYes = *yes

	dashboard := s.dashboard(nil)
	dashboard.Restore(ownerSession)
	if err := dashboard.Delete(ctx, id); err != nil {
		return err
	}

	fmt.Println("Removed.")
	printPortfolio(dashboard.Portfolio())

	return nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
