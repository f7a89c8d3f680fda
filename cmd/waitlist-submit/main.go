// cmd/waitlist-submit/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"waitlist-service/internal/collector"
	"waitlist-service/internal/common/logger"
	"waitlist-service/internal/models"
)

func main() {
	relayURL := flag.String("relay", "http://localhost:8080/api/waitlist", "Intake relay endpoint")
	timeout := flag.Duration("timeout", 30*time.Second, "Submission timeout")

	fullName := flag.String("fullName", "", "Full name (required)")
	age := flag.Int("age", 0, "Age, between 16 and 31 (required)")
	email := flag.String("email", "", "Email address (required)")
	phone := flag.String("phone", "", "Phone number (required)")
	city := flag.String("city", "", "City (required)")
	familyBusiness := flag.String("familyBusiness", "", "Family business description (required)")
	personalInterests := flag.String("personalInterests", "", "Personal interests (optional)")
	networkingGoals := flag.String("networkingGoals", "", "Networking goals (optional)")
	referralSource := flag.String("referralSource", "", "How the applicant heard about the club (optional)")
	flag.Parse()

	sub := models.ApplicationSubmission{
		FullName:          *fullName,
		Age:               *age,
		Email:             *email,
		Phone:             *phone,
		City:              *city,
		FamilyBusiness:    *familyBusiness,
		PersonalInterests: *personalInterests,
		NetworkingGoals:   *networkingGoals,
		ReferralSource:    *referralSource,
	}

	if err := collector.Validate(sub); err != nil {
		fmt.Fprintf(os.Stderr, "invalid submission: %v\n", err)
		flag.Usage()
		os.Exit(2)
	}

	log := logger.NewStructured("info", "console")
	c := collector.New(&collector.Config{
		RelayURL: *relayURL,
		Timeout:  *timeout,
	}, log)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	if err := c.Submit(ctx, sub); err != nil {
		fmt.Fprintln(os.Stderr, "submission failed")
		os.Exit(1)
	}

	fmt.Println("application submitted")
}
