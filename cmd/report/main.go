// Command report prints every booking, newest first, as a text table.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	_ "github.com/joho/godotenv/autoload" // Autoload .env file.
	"github.com/olekukonko/tablewriter"

	"github.com/yizeng/gab/gin/gorm/travel-booking/internal/config"
	"github.com/yizeng/gab/gin/gorm/travel-booking/internal/db"
	"github.com/yizeng/gab/gin/gorm/travel-booking/internal/domain"
	"github.com/yizeng/gab/gin/gorm/travel-booking/internal/logger"
	"github.com/yizeng/gab/gin/gorm/travel-booking/internal/repository"
	"github.com/yizeng/gab/gin/gorm/travel-booking/internal/repository/dao"
	"github.com/yizeng/gab/gin/gorm/travel-booking/internal/service"
)

func main() {
	if err := run(); err != nil {
		panic(err)
	}
}

func run() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	postgresDB, err := db.Open(conf.Postgres)
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	bookingRepo := repository.NewBookingRepository(dao.NewBookingDAO(postgresDB))
	destinationRepo := repository.NewDestinationRepository(dao.NewDestinationDAO(postgresDB))
	svc := service.NewBookingService(bookingRepo, destinationRepo)

	bookings, err := svc.ListBookings(context.Background())
	if err != nil {
		return fmt.Errorf("svc.ListBookings -> %w", err)
	}

	writeReport(os.Stdout, bookings)

	return nil
}

func writeReport(w io.Writer, bookings []domain.Booking) {
	if len(bookings) == 0 {
		fmt.Fprintln(w, "No bookings found.")
		return
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Destination", "Name", "Email", "Phone", "People", "Date", "Status", "Created At"})
	for _, b := range bookings {
		table.Append([]string{
			strconv.FormatUint(uint64(b.ID), 10),
			b.DestinationName,
			b.Name,
			b.Email,
			b.Phone,
			strconv.Itoa(b.NumPeople),
			b.Date,
			string(b.Status),
			b.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	table.Render()

	fmt.Fprintf(w, "%d booking(s)\n", len(bookings))
}
