// nlpctl exercises the nlistplanet client SDK from the command line:
// browse listings, place bids, respond to counters, check the
// portfolio, or follow the live update stream.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"nlistplanet/internal/adapter/backend"
	"nlistplanet/internal/domain/entity"
	"nlistplanet/internal/infrastructure/session"
	"nlistplanet/internal/infrastructure/stream"
	"nlistplanet/internal/usecase"
	"nlistplanet/pkg/config"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	sess := session.New()
	if token := os.Getenv("NLP_ACCESS_TOKEN"); token != "" {
		if err := sess.SetToken(token); err != nil {
			log.Fatalf("Invalid NLP_ACCESS_TOKEN: %v", err)
		}
	}

	client := backend.NewClient(cfg.APIBaseURL, sess,
		backend.WithTimeout(time.Duration(cfg.RequestTimeout)*time.Second))

	listings := usecase.NewListingUseCase(client)
	negotiations := usecase.NewNegotiationUseCase(client)
	portfolio := usecase.NewPortfolioUseCase(client)
	account := usecase.NewAccountUseCase(client)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch os.Args[1] {
	case "listings":
		err = runListings(ctx, listings, sess, os.Args[2:])
	case "bid":
		err = runBid(ctx, negotiations, sess, os.Args[2:])
	case "accept":
		err = runRespond(ctx, negotiations, sess, "accept", os.Args[2:])
	case "reject":
		err = runRespond(ctx, negotiations, sess, "reject", os.Args[2:])
	case "counter":
		err = runCounter(ctx, negotiations, sess, os.Args[2:])
	case "bids":
		err = runMyBids(ctx, negotiations, os.Args[2:])
	case "portfolio":
		err = runPortfolio(ctx, portfolio, sess)
	case "me":
		err = runMe(ctx, account)
	case "watch":
		err = runWatch(ctx, cfg, sess)
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatalf("%s failed: %v", os.Args[1], err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: nlpctl <command> [flags]

commands:
  listings   browse active listings
  bid        place a bid/offer on a listing
  accept     accept a negotiation
  reject     reject a negotiation
  counter    counter a negotiation with new terms
  bids       list your bids and offers
  portfolio  show holdings and deals
  me         show profile and KYC status
  watch      follow the live update stream`)
}

func runListings(ctx context.Context, uc *usecase.ListingUseCase, sess *session.Session, args []string) error {
	fs := flag.NewFlagSet("listings", flag.ExitOnError)
	company := fs.String("company", "", "filter by company id")
	kind := fs.String("type", "", "sell or buy")
	page := fs.Int("page", 1, "page number")
	fs.Parse(args)

	views, total, err := uc.Browse(ctx, sess.UserID(), backend.ListingFilter{
		CompanyID: *company,
		Type:      entity.ListingType(*kind),
		Status:    entity.ListingStatusActive,
		Page:      *page,
	})
	if err != nil {
		return err
	}

	fmt.Printf("%d listings (page %d)\n", total, *page)
	for _, v := range views {
		fmt.Printf("  %s  %-4s  %s: %.2f  qty %d (lot %d)  [%s]\n",
			v.Listing.ID, v.Listing.Type, v.Display.Label, v.Display.Amount,
			v.Listing.Quantity, v.Listing.MinLot, v.Listing.Status)
	}
	return nil
}

func runBid(ctx context.Context, uc *usecase.NegotiationUseCase, sess *session.Session, args []string) error {
	fs := flag.NewFlagSet("bid", flag.ExitOnError)
	listingID := fs.String("listing", "", "listing id")
	price := fs.Float64("price", 0, "proposed per-share price")
	quantity := fs.Int("qty", 0, "proposed quantity")
	fs.Parse(args)

	record, err := uc.PlaceBid(ctx, sess.UserID(), usecase.PlaceBidInput{
		ListingID: *listingID,
		Price:     *price,
		Quantity:  *quantity,
	})
	if err != nil {
		return err
	}
	fmt.Printf("placed %s: %.2f x %d (%s)\n", record.ID, record.Price, record.Quantity, record.Status)
	return nil
}

func fetchPair(ctx context.Context, uc *usecase.NegotiationUseCase, negotiationID string) (*entity.Listing, *entity.Negotiation, error) {
	record, err := uc.Refresh(ctx, negotiationID)
	if err != nil {
		return nil, nil, err
	}
	listing, err := uc.Listing(ctx, record.ListingID)
	if err != nil {
		return nil, nil, err
	}
	return listing, record, nil
}

func runRespond(ctx context.Context, uc *usecase.NegotiationUseCase, sess *session.Session, action string, args []string) error {
	fs := flag.NewFlagSet(action, flag.ExitOnError)
	negotiationID := fs.String("negotiation", "", "negotiation id")
	fs.Parse(args)

	listing, record, err := fetchPair(ctx, uc, *negotiationID)
	if err != nil {
		return err
	}

	var updated *entity.Negotiation
	if action == "accept" {
		updated, err = uc.Accept(ctx, sess.UserID(), listing, record)
	} else {
		updated, err = uc.Reject(ctx, record)
	}
	if err != nil {
		return err
	}
	fmt.Printf("%s -> %s\n", updated.ID, updated.Status)
	return nil
}

func runCounter(ctx context.Context, uc *usecase.NegotiationUseCase, sess *session.Session, args []string) error {
	fs := flag.NewFlagSet("counter", flag.ExitOnError)
	negotiationID := fs.String("negotiation", "", "negotiation id")
	price := fs.Float64("price", 0, "proposed per-share price")
	quantity := fs.Int("qty", 0, "proposed quantity")
	fs.Parse(args)

	listing, record, err := fetchPair(ctx, uc, *negotiationID)
	if err != nil {
		return err
	}

	updated, err := uc.Counter(ctx, sess.UserID(), listing, record, usecase.CounterInput{
		Price:    *price,
		Quantity: *quantity,
	})
	if err != nil {
		return err
	}
	price2, qty := updated.LatestTerms()
	fmt.Printf("%s -> %s at %.2f x %d\n", updated.ID, updated.Status, price2, qty)
	return nil
}

func runMyBids(ctx context.Context, uc *usecase.NegotiationUseCase, args []string) error {
	fs := flag.NewFlagSet("bids", flag.ExitOnError)
	status := fs.String("status", "", "filter by status")
	fs.Parse(args)

	records, total, err := uc.MyBids(ctx, entity.NegotiationStatus(*status), 1, 50)
	if err != nil {
		return err
	}

	fmt.Printf("%d records\n", total)
	for _, r := range records {
		price, qty := r.LatestTerms()
		fmt.Printf("  %s  listing=%s  %.2f x %d  [%s]\n", r.ID, r.ListingID, price, qty, r.Status)
	}
	return nil
}

func runPortfolio(ctx context.Context, uc *usecase.PortfolioUseCase, sess *session.Session) error {
	summary, err := uc.Summary(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("holdings (total value %.2f):\n", summary.TotalValue)
	for _, h := range summary.Holdings {
		fmt.Printf("  %-20s qty %-6d avg %.2f value %.2f\n",
			h.CompanyName, h.Quantity, h.AvgBuyPrice, h.MarketValue())
	}

	deals, err := uc.Deals(ctx, sess.UserID())
	if err != nil {
		return err
	}
	if len(deals) > 0 {
		fmt.Println("deals:")
		for _, d := range deals {
			fmt.Printf("  %s  as %s  %.2f x %d  [%s]  code=%s\n",
				d.Deal.ID, d.Role, d.Deal.Price, d.Deal.Quantity, d.Deal.Status, d.YourCode)
		}
	}
	return nil
}

func runMe(ctx context.Context, uc *usecase.AccountUseCase) error {
	user, err := uc.Me(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("%s <%s>\nKYC: %s", user.Username, user.Email, user.KYCStatus)
	if !user.CanTrade() {
		fmt.Print(" (trading disabled until verified)")
	}
	fmt.Println()
	return nil
}

func runWatch(ctx context.Context, cfg *config.Config, sess *session.Session) error {
	sub := stream.NewSubscriber(cfg.StreamURL, sess, func(e stream.Event) {
		fmt.Printf("%s  %s listing=%s negotiation=%s status=%s\n",
			time.Now().Format(time.TimeOnly), e.Kind, e.ListingID, e.NegotiationID, e.Status)
	})
	err := sub.Run(ctx)
	if err == context.Canceled {
		return nil
	}
	return err
}
