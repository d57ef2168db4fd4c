package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/demeter-health/backend/config"
	"github.com/demeter-health/backend/internal/models"
)

// ErrNoScan is returned when a user has no uploaded scan of the requested kind.
var ErrNoScan = errors.New("no scan uploaded")

// scanURLTTL is how long the presigned link returned on upload stays valid.
const scanURLTTL = 15 * time.Minute

// ScanService stores uploaded scan images in S3 and indexes them in the
// database.
type ScanService struct {
	db       *gorm.DB
	s3Config *config.S3Config
}

var _ ScanStore = (*ScanService)(nil)

// NewScanService creates a new ScanService instance.
func NewScanService(db *gorm.DB, s3Config *config.S3Config) *ScanService {
	return &ScanService{db: db, s3Config: s3Config}
}

// UploadScan stores the image in S3 under scans/{uid}/{kind}/ and records the
// upload. The newest record per uid+kind is what the analysis services read.
func (s *ScanService) UploadScan(ctx context.Context, uid, kind, contentType string, data io.Reader) (*models.ScanUpload, error) {
	switch kind {
	case models.ScanKindFridge, models.ScanKindReport, models.ScanKindGrocery:
	default:
		return nil, fmt.Errorf("unknown scan kind %q", kind)
	}

	upload := &models.ScanUpload{
		ID:          uuid.New(),
		UID:         uid,
		Kind:        kind,
		ObjectKey:   fmt.Sprintf("scans/%s/%s/%s.jpg", uid, kind, uuid.New().String()),
		ContentType: contentType,
	}

	body, err := io.ReadAll(data)
	if err != nil {
		return nil, fmt.Errorf("failed to read upload: %w", err)
	}

	_, err = s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(upload.ObjectKey),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload scan to S3: %w", err)
	}

	if err := s.db.WithContext(ctx).Create(upload).Error; err != nil {
		return nil, fmt.Errorf("failed to record scan upload: %w", err)
	}

	url, err := s.s3Config.GeneratePresignedURL(ctx, upload.ObjectKey, scanURLTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to presign scan url: %w", err)
	}
	upload.URL = url

	log.Printf("[ScanService] stored %s scan %s for user %s", kind, upload.ObjectKey, uid)
	return upload, nil
}

// LatestScan returns the newest scan of the given kind together with its
// image bytes.
func (s *ScanService) LatestScan(ctx context.Context, uid, kind string) (*models.ScanUpload, []byte, error) {
	var upload models.ScanUpload
	err := s.db.WithContext(ctx).
		Where("uid = ? AND kind = ?", uid, kind).
		Order("created_at DESC").
		First(&upload).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, fmt.Errorf("%w: uid=%s kind=%s", ErrNoScan, uid, kind)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query scan uploads: %w", err)
	}

	obj, err := s.s3Config.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.s3Config.BucketName),
		Key:    aws.String(upload.ObjectKey),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch scan from S3: %w", err)
	}
	defer obj.Body.Close()

	data, err := io.ReadAll(obj.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read scan body: %w", err)
	}
	return &upload, data, nil
}
