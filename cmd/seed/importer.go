package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ArowuTest/intern-dashboard/internal/models"
	"github.com/ArowuTest/intern-dashboard/internal/services"
	"github.com/sirupsen/logrus"
)

// importResult counts what happened to each data row
type importResult struct {
	Created  int
	Existing int
	Skipped  int
}

// importInterns reads name,email,password,referralCode rows (with a header
// row) and registers each through the normal signup path.
func importInterns(ctx context.Context, svc services.InternService, r io.Reader, log logrus.FieldLogger) (importResult, error) {
	var result importResult

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return result, fmt.Errorf("failed to parse CSV file: %w", err)
	}
	if len(records) < 2 {
		return result, errors.New("CSV file is empty or has only header")
	}

	for i, record := range records[1:] {
		line := i + 2
		if len(record) < 4 {
			log.Warnf("Record on line %d has less than 4 fields, skipping", line)
			result.Skipped++
			continue
		}

		req := &models.CreateInternRequest{
			Name:         strings.TrimSpace(record[0]),
			Email:        strings.TrimSpace(record[1]),
			Password:     record[2],
			ReferralCode: strings.TrimSpace(record[3]),
		}

		intern, err := svc.CreateIntern(ctx, req)
		switch {
		case errors.Is(err, services.ErrInternExists):
			log.Infof("Intern %s already exists, skipping", req.Email)
			result.Existing++
		case err != nil:
			log.Warnf("Failed to create intern on line %d: %v", line, err)
			result.Skipped++
		default:
			log.WithField("id", intern.ID.Hex()).Debugf("Created intern %s", intern.Email)
			result.Created++
		}
	}

	return result, nil
}
