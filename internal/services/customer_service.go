package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/models"
	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/repositories"
	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/timeutil"
)

type CustomerService struct {
	Repo          *repositories.CustomerRepository
	Transliterate *TransliterateService
	Debounce      *Debouncer
}

func NewCustomerService(repo *repositories.CustomerRepository, tr *TransliterateService) *CustomerService {
	return &CustomerService{
		Repo:          repo,
		Transliterate: tr,
		Debounce:      NewDebouncer(300 * time.Millisecond),
	}
}

// Save validates and upserts a customer. A new customer (empty id) gets the
// month-sequence id derived from its start date; if the date is unusable
// the repository falls back to a random id. Hindi name fields left blank
// are filled in the background via transliteration.
func (s *CustomerService) Save(ctx context.Context, c models.Customer) (models.Customer, error) {
	if strings.TrimSpace(c.Name) == "" {
		return models.Customer{}, errors.New("customer name is required")
	}
	if strings.TrimSpace(c.Area) == "" {
		return models.Customer{}, errors.New("customer area is required")
	}
	if c.RateJar < 0 || c.RateThermos < 0 {
		return models.Customer{}, errors.New("rates must not be negative")
	}

	if c.StartDate == "" {
		c.StartDate = timeutil.Today()
	}
	if c.ID == "" {
		if c.RateJar == 0 && c.RateThermos == 0 {
			c.RateJar = models.DefaultRateJar
			c.RateThermos = models.DefaultRateThermos
		}
		c.ID = s.GenerateNextID(ctx, c.StartDate)
	}

	saved := s.Repo.Save(ctx, c)
	s.scheduleHindiFill(saved)
	return saved, nil
}

// GenerateNextID produces a YYYYMM#### id from the reference date: the
// year+month prefix plus the next 4-digit sequence within that month.
// Sequence numbers restart every month. An unparseable date yields "".
func (s *CustomerService) GenerateNextID(ctx context.Context, refDate string) string {
	year, month, _, ok := timeutil.SplitDate(refDate)
	if !ok {
		return ""
	}
	prefix := fmt.Sprintf("%04d%02d", year, month)

	max := 0
	for _, c := range s.Repo.List(ctx) {
		if !strings.HasPrefix(c.ID, prefix) || len(c.ID) != 10 {
			continue
		}
		seq, err := strconv.Atoi(c.ID[6:])
		if err != nil {
			continue
		}
		if seq > max {
			max = seq
		}
	}
	return fmt.Sprintf("%s%04d", prefix, max+1)
}

// Delete removes the customer outright. Their transactions stay behind as
// history.
func (s *CustomerService) Delete(ctx context.Context, id string) {
	s.Repo.Delete(ctx, id)
}

// BulkSeed inserts fully-formed customers in one write.
func (s *CustomerService) BulkSeed(ctx context.Context, customers []models.Customer) {
	s.Repo.BulkInsert(ctx, customers)
}

// scheduleHindiFill queues a debounced transliteration for each blank
// secondary-script field. The write is skipped if the field got a value in
// the meantime; beyond that there is no stale guard.
func (s *CustomerService) scheduleHindiFill(c models.Customer) {
	if s.Transliterate == nil || s.Debounce == nil {
		return
	}

	if c.NameHindi == "" && c.Name != "" {
		s.Debounce.Schedule(c.ID+":name", func() {
			s.fillHindiField(c.ID, "name")
		})
	}
	if c.LandmarkHindi == "" && c.Landmark != "" {
		s.Debounce.Schedule(c.ID+":landmark", func() {
			s.fillHindiField(c.ID, "landmark")
		})
	}
}

func (s *CustomerService) fillHindiField(customerID, field string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	c, ok := s.Repo.Get(ctx, customerID)
	if !ok {
		return
	}

	switch field {
	case "name":
		if c.NameHindi != "" || c.Name == "" {
			return
		}
		hindi := s.Transliterate.Transliterate(ctx, c.Name)
		if hindi == c.Name {
			return
		}
		c.NameHindi = hindi
	case "landmark":
		if c.LandmarkHindi != "" || c.Landmark == "" {
			return
		}
		hindi := s.Transliterate.Transliterate(ctx, c.Landmark)
		if hindi == c.Landmark {
			return
		}
		c.LandmarkHindi = hindi
	default:
		return
	}

	s.Repo.Save(ctx, c)
	log.Printf("[Customer] Filled hindi %s for %s", field, customerID)
}
