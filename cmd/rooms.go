package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fharpR4/roomie-app/internal/domain"
	"github.com/fharpR4/roomie-app/internal/ports"
)

func newRoomsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rooms",
		Short: "Browse rooms and manage bids",
	}

	cmd.AddCommand(
		newRoomsListCmd(app),
		newRoomsSearchCmd(app),
		newRoomsShowCmd(app),
		newRoomsCreateCmd(app),
		newRoomsBidCmd(app),
		newRoomsBidsCmd(app),
	)

	return cmd
}

func newRoomsListCmd(app *app) *cobra.Command {
	var city string
	var roomType string
	var minPrice int64
	var maxPrice int64
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available rooms, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := requireSession(cmd.Context(), app); err != nil {
				return err
			}

			rooms, err := app.gateway.ListRooms(cmd.Context(), domain.RoomFilter{
				City:     city,
				RoomType: domain.RoomType(roomType),
				MinPrice: minPrice,
				MaxPrice: maxPrice,
				Query:    query,
			})
			if err != nil {
				return err
			}

			printRooms(cmd, rooms)
			return nil
		},
	}

	cmd.Flags().StringVar(&city, "city", "", "Filter by city")
	cmd.Flags().StringVar(&roomType, "type", "", "Filter by room type (single|shared|self_contain)")
	cmd.Flags().Int64Var(&minPrice, "min-price", 0, "Minimum price")
	cmd.Flags().Int64Var(&maxPrice, "max-price", 0, "Maximum price")
	cmd.Flags().StringVar(&query, "query", "", "Text match across title, location and city")

	return cmd
}

func newRoomsSearchCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "search <term>",
		Short: "Search available rooms by title, location or city",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireSession(cmd.Context(), app); err != nil {
				return err
			}

			rooms, err := app.gateway.SearchRooms(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			printRooms(cmd, rooms)
			return nil
		},
	}
}

func newRoomsShowCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <room-id>",
		Short: "Show a room's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireSession(cmd.Context(), app); err != nil {
				return err
			}

			room, err := app.gateway.GetRoom(cmd.Context(), domain.RoomID(args[0]))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%s\n", room.Title)
			_, _ = fmt.Fprintf(out, "%s · %s · ₦%d · %s\n", room.Location, room.City, room.Price, room.RoomType)
			if room.Description != "" {
				_, _ = fmt.Fprintln(out, room.Description)
			}
			if room.Landlord != nil {
				_, _ = fmt.Fprintf(out, "Listed by %s\n", room.Landlord.FullName)
			}
			if room.BidCount > 0 {
				_, _ = fmt.Fprintf(out, "%d bids so far\n", room.BidCount)
			}
			return nil
		},
	}
}

func newRoomsCreateCmd(app *app) *cobra.Command {
	var title string
	var description string
	var location string
	var city string
	var price int64
	var roomType string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "List a room for rent",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := requireSession(cmd.Context(), app)
			if err != nil {
				return err
			}

			room, err := app.gateway.CreateRoom(cmd.Context(), domain.Room{
				LandlordID:  session.Profile.ID,
				Title:       title,
				Description: description,
				Location:    location,
				City:        city,
				Price:       price,
				RoomType:    domain.RoomType(roomType),
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Listed %s as %s\n", room.Title, room.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Listing title")
	cmd.Flags().StringVar(&description, "description", "", "Listing description")
	cmd.Flags().StringVar(&location, "location", "", "Street or area")
	cmd.Flags().StringVar(&city, "city", "", "City")
	cmd.Flags().Int64Var(&price, "price", 0, "Price per year")
	cmd.Flags().StringVar(&roomType, "type", "single", "Room type (single|shared|self_contain)")
	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("location")
	_ = cmd.MarkFlagRequired("city")
	_ = cmd.MarkFlagRequired("price")

	return cmd
}

func newRoomsBidCmd(app *app) *cobra.Command {
	var roomID string
	var amount int64

	cmd := &cobra.Command{
		Use:   "bid",
		Short: "Place a bid on a room",
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := requireSession(cmd.Context(), app)
			if err != nil {
				return err
			}

			bid, err := app.gateway.PlaceBid(cmd.Context(), ports.NewBid{
				RoomID:   domain.RoomID(roomID),
				BidderID: session.Profile.ID,
				Amount:   amount,
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Bid %s placed: ₦%d (%s)\n", bid.ID, bid.Amount, bid.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&roomID, "room", "", "Room ID")
	cmd.Flags().Int64Var(&amount, "amount", 0, "Bid amount")
	_ = cmd.MarkFlagRequired("room")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func newRoomsBidsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "bids <room-id>",
		Short: "List a room's bids, highest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := requireSession(cmd.Context(), app); err != nil {
				return err
			}

			bids, err := app.gateway.ListRoomBids(cmd.Context(), domain.RoomID(args[0]))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(bids) == 0 {
				_, _ = fmt.Fprintln(out, "No bids yet.")
				return nil
			}
			for _, bid := range bids {
				bidder := string(bid.BidderID)
				if bid.Bidder != nil {
					bidder = bid.Bidder.FullName
				}
				_, _ = fmt.Fprintf(out, "₦%d  %s  (%s)\n", bid.Amount, bidder, bid.Status)
			}
			return nil
		},
	}
}

func printRooms(cmd *cobra.Command, rooms []domain.Room) {
	out := cmd.OutOrStdout()
	if len(rooms) == 0 {
		_, _ = fmt.Fprintln(out, "No rooms found.")
		return
	}
	for _, room := range rooms {
		_, _ = fmt.Fprintf(out, "%s  %s · %s · ₦%d\n", room.ID, room.Title, room.City, room.Price)
	}
}
