package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - nearby:    list and map listings around a point
// - search:    geocode a place and list listings around it
// - portfolio: list the listings of an owner
// - maplink:   resolve a shared map link to coordinates
// - qrcode:    download a listing's share code
// - login:     run the OTP login and print a session token
// - publish:   create or update a listing as an owner
// - remove:    delete a listing as an owner

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := runSubcommand(ctx, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runSubcommand(ctx context.Context, name string, args []string) error {
	switch name {
	case "nearby":
		return handleNearby(ctx, args)
	case "search":
		return handleSearch(ctx, args)
	case "portfolio":
		return handlePortfolio(ctx, args)
	case "maplink":
		return handleMapLink(ctx, args)
	case "qrcode":
		return handleQRCode(ctx, args)
	case "login":
		return handleLogin(ctx, args)
	case "publish":
		return handlePublish(ctx, args)
	case "remove":
		return handleRemove(ctx, args)
	case "help", "-h", "--help":
		printUsage()

		return nil
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

// commonFlags are accepted by every subcommand.
type commonFlags struct {
	baseURL *string
	verbose *bool
}

func newFlagSet(name string) (*flag.FlagSet, commonFlags) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	common := commonFlags{
		baseURL: fs.String("api", "", "API base URL (defaults to client.baseUrl)"),
		verbose: fs.Bool("v", false, "Log requests to stderr"),
	}

	return fs, common
}

func printUsage() {
	fmt.Println("parkoctl - parking space finder")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  parkoctl <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  nearby     List listings around a point, nearest first")
	fmt.Println("  search     Find a place and list listings around it")
	fmt.Println("  portfolio  List the listings of an owner")
	fmt.Println("  maplink    Resolve a shared map link to coordinates")
	fmt.Println("  qrcode     Save the QR share code of a listing")
	fmt.Println("  login      Log in as an owner with an emailed code")
	fmt.Println("  publish    Create a listing, or update one with -id")
	fmt.Println("  remove     Delete one of your listings")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  parkoctl nearby -lat 12.9716 -lng 77.5946 -radius 3")
	fmt.Println("  parkoctl search -q \"Indiranagar\" -map")
	fmt.Println("  parkoctl login -name Asha -phone 9876543210 -email asha@example.com")
	fmt.Println("  parkoctl publish -token $TOKEN -phone 9876543210 -title \"Basement bay\" -length 5 -breadth 4")
}
