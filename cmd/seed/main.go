package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	_ "github.com/lib/pq"

	"github.com/SaimAkramGill/bewanted/internal/config"
	"github.com/SaimAkramGill/bewanted/internal/domain"
	companyRepo "github.com/SaimAkramGill/bewanted/internal/infra/storage/company"
	companiesService "github.com/SaimAkramGill/bewanted/internal/service/companies"
	"github.com/SaimAkramGill/bewanted/migrations"
	"github.com/SaimAkramGill/bewanted/pkg/logger"
	"github.com/SaimAkramGill/bewanted/pkg/ptr"
)

// Компании-участники ярмарки. Особые правила (ёмкость, длительность,
// языковые и визовые требования, закрытая запись) задаются данными.
func seedCompanies() []*domain.Company {
	return []*domain.Company{
		{
			Name:            "Anton Paar",
			Industry:        "Technology",
			PackageType:     domain.PackagePlatinum,
			InterviewUnit:   domain.UnitStandard,
			CapacityPerSlot: domain.DefaultCapacityPerSlot,
			BookingEnabled:  true,
			Positions:       []string{"Software Engineer", "Data Scientist", "Product Manager", "UX Designer"},
			Description:     ptr.Ptr("Leading technology company focused on search, cloud computing, and artificial intelligence."),
			Website:         ptr.Ptr("https://www.anton-paar.com/at-de/"),
			Contact: domain.ContactPerson{
				Name:  ptr.Ptr("Sarah Johnson"),
				Email: ptr.Ptr("sarah.johnson@google.com"),
				Phone: ptr.Ptr("+1-555-0101"),
			},
			IsActive: true,
		},
		{
			Name:            "Siemens",
			Industry:        "Technology",
			PackageType:     domain.PackagePlatinum,
			InterviewUnit:   domain.UnitStandard,
			CapacityPerSlot: domain.DefaultCapacityPerSlot,
			// Запись откроется позже, компания видна в списке заранее
			BookingEnabled: false,
			Positions:      []string{"Cloud Engineer", "Software Developer", "Azure Specialist", "AI Engineer"},
			Description:    ptr.Ptr("Global technology company developing software, services, devices and solutions."),
			Website:        ptr.Ptr("https://www.siemens.com/at/de.html"),
			Contact: domain.ContactPerson{
				Name:  ptr.Ptr("Mike Chen"),
				Email: ptr.Ptr("mike.chen@microsoft.com"),
				Phone: ptr.Ptr("+1-555-0102"),
			},
			IsActive: true,
		},
		{
			Name:                   "Netconomy",
			Industry:               "E-commerce/Cloud",
			PackageType:            domain.PackageGold,
			InterviewUnit:          domain.UnitStandard,
			CapacityPerSlot:        domain.DefaultCapacityPerSlot,
			BookingEnabled:         true,
			InternshipVisaRequired: true,
			Positions:              []string{"DevOps Engineer", "Business Analyst", "Solutions Architect", "Operations Manager"},
			Description:            ptr.Ptr("Multinational technology company focusing on e-commerce, cloud computing, and AI."),
			Website:                ptr.Ptr("https://netconomy.net/"),
			Contact: domain.ContactPerson{
				Name:  ptr.Ptr("Emily Rodriguez"),
				Email: ptr.Ptr("emily.rodriguez@amazon.com"),
				Phone: ptr.Ptr("+1-555-0103"),
			},
			IsActive: true,
		},
		{
			Name:            "SSI SCHÄFER",
			Industry:        "Automotive/Energy",
			PackageType:     domain.PackageGold,
			InterviewUnit:   domain.UnitStandard,
			CapacityPerSlot: domain.DefaultCapacityPerSlot,
			BookingEnabled:  true,
			Positions:       []string{"Mechanical Engineer", "Software Engineer", "Battery Engineer", "Manufacturing Engineer"},
			Description:     ptr.Ptr("Electric vehicle and clean energy company accelerating sustainable transport and energy."),
			Website:         ptr.Ptr("https://www.ssi-schaefer.com/en-de/"),
			Contact: domain.ContactPerson{
				Name:  ptr.Ptr("David Kim"),
				Email: ptr.Ptr("david.kim@tesla.com"),
				Phone: ptr.Ptr("+1-555-0104"),
			},
			IsActive: true,
		},
		{
			Name:        "Beyond Now",
			Industry:    "Technology",
			PackageType: domain.PackageSilver,
			// Короткие интервью по одному студенту за слот
			InterviewUnit:   domain.UnitQuick,
			CapacityPerSlot: domain.ReducedCapacityPerSlot,
			BookingEnabled:  true,
			Positions:       []string{"iOS Developer", "Hardware Engineer", "Machine Learning Engineer", "Design Engineer"},
			Description:     ptr.Ptr("Technology company that designs and develops consumer electronics and software."),
			Website:         ptr.Ptr("https://www.beyondnow.com/en/"),
			Contact: domain.ContactPerson{
				Name:  ptr.Ptr("Lisa Wang"),
				Email: ptr.Ptr("lisa.wang@apple.com"),
				Phone: ptr.Ptr("+1-555-0105"),
			},
			IsActive: true,
		},
		{
			Name:            "ÖBB",
			Industry:        "Social Media/Technology",
			PackageType:     domain.PackageGold,
			InterviewUnit:   domain.UnitStandard,
			CapacityPerSlot: domain.DefaultCapacityPerSlot,
			BookingEnabled:  true,
			GermanRequired:  true,
			Positions:       []string{"Frontend Developer", "VR Engineer", "Data Engineer", "Content Moderator"},
			Description:     ptr.Ptr("Social technology company connecting people through apps and immersive experiences."),
			Website:         ptr.Ptr("https://www.oebb.at/en/"),
			Contact: domain.ContactPerson{
				Name:  ptr.Ptr("Alex Thompson"),
				Email: ptr.Ptr("alex.thompson@meta.com"),
				Phone: ptr.Ptr("+1-555-0106"),
			},
			IsActive: true,
		},
	}
}

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New("", cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}

	ctx := context.Background()

	if err := migrations.Up(ctx, db, log); err != nil {
		log.Fatal("Failed to apply migrations: %v", err)
	}

	svc := companiesService.NewService(companyRepo.NewRepository(db), log)

	created, skipped := 0, 0
	for _, c := range seedCompanies() {
		if _, err := svc.Create(ctx, c); err != nil {
			if errors.Is(err, companiesService.ErrCompanyExists) {
				log.Info("Company %q already exists, skipping", c.Name)
				skipped++
				continue
			}
			log.Fatal("Failed to seed company %q: %v", c.Name, err)
		}
		created++
	}

	log.Info("Seeding done: %d created, %d skipped", created, skipped)
}
