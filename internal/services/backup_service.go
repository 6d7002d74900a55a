package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/models"
	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/repositories"
	"github.com/Abhishek-dev18/Water-Distribution-Management/internal/timeutil"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ExportDocument is the whole-database backup format: all four collections
// in one JSON object.
type ExportDocument struct {
	ExportedAt   string               `json:"exportedAt"`
	Customers    []models.Customer    `json:"customers"`
	Areas        []models.Area        `json:"areas"`
	Transactions []models.Transaction `json:"transactions"`
	Settings     models.AppSettings   `json:"settings"`
}

// ImportResult signals whether a restore was applied.
type ImportResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// R2Config holds the object-storage target for off-site backups. Empty
// credentials disable the feature.
type R2Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
}

// BackupService serializes the whole dataset for download and optionally
// ships it to Cloudflare R2 on a schedule.
type BackupService struct {
	CustomerRepo    *repositories.CustomerRepository
	AreaRepo        *repositories.AreaRepository
	TransactionRepo *repositories.TransactionRepository
	SettingsRepo    *repositories.SettingsRepository

	r2 R2Config

	mu     sync.Mutex
	ticker *time.Ticker
	stop   chan struct{}
}

func NewBackupService(
	customerRepo *repositories.CustomerRepository,
	areaRepo *repositories.AreaRepository,
	transactionRepo *repositories.TransactionRepository,
	settingsRepo *repositories.SettingsRepository,
	r2 R2Config,
) *BackupService {
	return &BackupService{
		CustomerRepo:    customerRepo,
		AreaRepo:        areaRepo,
		TransactionRepo: transactionRepo,
		SettingsRepo:    settingsRepo,
		r2:              r2,
	}
}

// Export reads all four collections into one document.
func (s *BackupService) Export(ctx context.Context) ExportDocument {
	doc := ExportDocument{
		ExportedAt:   timeutil.FormatIST(time.Now(), timeutil.DateTimeLayout),
		Customers:    s.CustomerRepo.List(ctx),
		Areas:        s.AreaRepo.List(ctx),
		Transactions: s.TransactionRepo.List(ctx),
		Settings:     s.SettingsRepo.Get(ctx),
	}
	if doc.Customers == nil {
		doc.Customers = []models.Customer{}
	}
	if doc.Areas == nil {
		doc.Areas = []models.Area{}
	}
	if doc.Transactions == nil {
		doc.Transactions = []models.Transaction{}
	}
	return doc
}

// Import overwrites every collection from a backup document. The payload
// is parsed in full before any write happens, so a malformed backup never
// leaves partial state; the collection writes themselves run sequentially.
func (s *BackupService) Import(ctx context.Context, raw []byte) ImportResult {
	var doc ExportDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return ImportResult{Success: false, Message: fmt.Sprintf("invalid backup file: %v", err)}
	}

	s.CustomerRepo.ReplaceAll(ctx, doc.Customers)
	s.AreaRepo.ReplaceAll(ctx, doc.Areas)
	s.TransactionRepo.ReplaceAll(ctx, doc.Transactions)
	s.SettingsRepo.Save(ctx, doc.Settings)

	log.Printf("[Backup] Imported %d customers, %d areas, %d transactions",
		len(doc.Customers), len(doc.Areas), len(doc.Transactions))
	return ImportResult{Success: true, Message: "backup restored"}
}

// R2Enabled reports whether off-site backups are configured.
func (s *BackupService) R2Enabled() bool {
	return s.r2.AccessKey != "" && s.r2.SecretKey != "" && s.r2.Bucket != ""
}

func (s *BackupService) r2Client(ctx context.Context) (*s3.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.r2.AccessKey,
			s.r2.SecretKey,
			"",
		)),
		awsconfig.WithRegion(s.r2.Region),
	)
	if err != nil {
		return nil, err
	}
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.r2.Endpoint)
	}), nil
}

// UploadToR2 exports the dataset and puts it in the backup bucket. Returns
// the object key.
func (s *BackupService) UploadToR2(ctx context.Context) (string, error) {
	if !s.R2Enabled() {
		return "", fmt.Errorf("R2 backup not configured")
	}

	doc := s.Export(ctx)
	raw, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}

	client, err := s.r2Client(ctx)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("backups/aquaflow_%s.json", timeutil.FormatIST(time.Now(), "2006-01-02_150405"))
	_, err = client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.r2.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(raw),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", err
	}

	log.Printf("[Backup] Uploaded %s (%d bytes)", key, len(raw))
	return key, nil
}

// BackupObject describes one stored backup.
type BackupObject struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"lastModified"`
}

// ListR2Backups returns the stored backups, newest first.
func (s *BackupService) ListR2Backups(ctx context.Context) ([]BackupObject, error) {
	if !s.R2Enabled() {
		return nil, fmt.Errorf("R2 backup not configured")
	}

	client, err := s.r2Client(ctx)
	if err != nil {
		return nil, err
	}

	result, err := client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.r2.Bucket),
		Prefix: aws.String("backups/"),
	})
	if err != nil {
		return nil, err
	}

	var objects []BackupObject
	for _, obj := range result.Contents {
		objects = append(objects, BackupObject{
			Key:          aws.ToString(obj.Key),
			Size:         aws.ToInt64(obj.Size),
			LastModified: aws.ToTime(obj.LastModified),
		})
	}
	sort.Slice(objects, func(i, j int) bool {
		return objects[i].LastModified.After(objects[j].LastModified)
	})
	return objects, nil
}

// RestoreFromR2 downloads a stored backup and imports it.
func (s *BackupService) RestoreFromR2(ctx context.Context, key string) ImportResult {
	if !s.R2Enabled() {
		return ImportResult{Success: false, Message: "R2 backup not configured"}
	}

	client, err := s.r2Client(ctx)
	if err != nil {
		return ImportResult{Success: false, Message: err.Error()}
	}

	result, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.r2.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return ImportResult{Success: false, Message: fmt.Sprintf("fetch backup: %v", err)}
	}
	defer result.Body.Close()

	raw, err := io.ReadAll(result.Body)
	if err != nil {
		return ImportResult{Success: false, Message: fmt.Sprintf("read backup: %v", err)}
	}
	return s.Import(ctx, raw)
}

// StartScheduler begins periodic R2 uploads. Restarting replaces the
// previous schedule.
func (s *BackupService) StartScheduler(interval time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ticker != nil {
		s.ticker.Stop()
		close(s.stop)
	}

	s.ticker = time.NewTicker(interval)
	s.stop = make(chan struct{})

	go func(ticker *time.Ticker, stop chan struct{}) {
		log.Printf("[Backup] Scheduler started (every %s)", interval)
		for {
			select {
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
				if _, err := s.UploadToR2(ctx); err != nil {
					log.Printf("[Backup] Scheduled upload failed: %v", err)
				}
				cancel()
			case <-stop:
				log.Println("[Backup] Scheduler stopped")
				return
			}
		}
	}(s.ticker, s.stop)
}

// StopScheduler halts periodic uploads.
func (s *BackupService) StopScheduler() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ticker != nil {
		s.ticker.Stop()
		close(s.stop)
		s.ticker = nil
		s.stop = nil
	}
}

// SchedulerRunning reports whether periodic uploads are active.
func (s *BackupService) SchedulerRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ticker != nil
}
