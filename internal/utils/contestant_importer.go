package utils

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/smallie-ng/smallie-web/internal/models"
	"github.com/smallie-ng/smallie-web/internal/repositories"
)

// ImportResult summarizes a contestant import
type ImportResult struct {
	TotalRows int
	Imported  int
	Errors    []string
}

// ContestantImporter loads contestants from a CSV roster into the document store
type ContestantImporter struct {
	contestantRepo repositories.ContestantRepository
}

// NewContestantImporter creates a new ContestantImporter
func NewContestantImporter(contestantRepo repositories.ContestantRepository) *ContestantImporter {
	return &ContestantImporter{
		contestantRepo: contestantRepo,
	}
}

// Import parses the roster and upserts every valid row. Invalid rows are
// reported in the result and skipped.
func (i *ContestantImporter) Import(ctx context.Context, r io.Reader) (*ImportResult, error) {
	contestants, result, err := ParseContestants(r)
	if err != nil {
		return nil, err
	}
	if len(contestants) == 0 {
		return result, nil
	}

	if err := i.contestantRepo.SeedMany(ctx, contestants); err != nil {
		return result, fmt.Errorf("failed to store contestants: %w", err)
	}
	result.Imported = len(contestants)
	return result, nil
}

// ParseContestants reads a roster with a header row. Only the id and name
// columns are required; column names are matched case-insensitively.
func ParseContestants(r io.Reader) ([]*models.Contestant, *ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	// Read the header row
	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, errors.New("CSV file is empty")
		}
		return nil, nil, fmt.Errorf("failed to read header: %w", err)
	}

	// Map column indices
	idIdx := findColumnIndex(header, []string{"ID", "Contestant ID"})
	nameIdx := findColumnIndex(header, []string{"Name", "Full Name"})
	ageIdx := findColumnIndex(header, []string{"Age"})
	locationIdx := findColumnIndex(header, []string{"Location", "City"})
	bioIdx := findColumnIndex(header, []string{"Bio", "Biography"})
	votesIdx := findColumnIndex(header, []string{"Votes", "Vote Count"})
	imageIdx := findColumnIndex(header, []string{"Image URL", "ImageURL", "Image"})
	streamIdx := findColumnIndex(header, []string{"Stream URL", "StreamURL", "Stream"})
	eliminatedIdx := findColumnIndex(header, []string{"Eliminated"})

	if idIdx == -1 || nameIdx == -1 {
		return nil, nil, errors.New("id and name columns are required")
	}

	result := &ImportResult{}
	var contestants []*models.Contestant
	seen := make(map[string]bool)

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		result.TotalRows++
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", result.TotalRows, err))
			continue
		}

		c := &models.Contestant{
			ID:        field(row, idIdx),
			Name:      field(row, nameIdx),
			Location:  field(row, locationIdx),
			Bio:       field(row, bioIdx),
			ImageURL:  field(row, imageIdx),
			StreamURL: field(row, streamIdx),
		}
		if c.ID == "" || c.Name == "" {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: id and name are required", result.TotalRows))
			continue
		}
		if seen[c.ID] {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: duplicate id %s", result.TotalRows, c.ID))
			continue
		}

		if c.Age, err = intField(row, ageIdx); err != nil || c.Age < 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: invalid age: %s", result.TotalRows, field(row, ageIdx)))
			continue
		}
		if c.Votes, err = intField(row, votesIdx); err != nil || c.Votes < 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: invalid votes: %s", result.TotalRows, field(row, votesIdx)))
			continue
		}
		c.Eliminated = parseBool(field(row, eliminatedIdx))

		seen[c.ID] = true
		contestants = append(contestants, c)
	}

	return contestants, result, nil
}

// findColumnIndex returns the index of the first header matching any alias, or -1
func findColumnIndex(header []string, aliases []string) int {
	for i, h := range header {
		for _, alias := range aliases {
			if strings.EqualFold(strings.TrimSpace(h), alias) {
				return i
			}
		}
	}
	return -1
}

func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func intField(row []string, idx int) (int, error) {
	v := field(row, idx)
	if v == "" {
		return 0, nil
	}
	return strconv.Atoi(v)
}

func parseBool(v string) bool {
	switch strings.ToLower(v) {
	case "yes", "true", "1", "y":
		return true
	}
	return false
}
