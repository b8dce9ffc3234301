package holdings

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/dkellaway/vantage/internal/common"
	"github.com/dkellaway/vantage/internal/interfaces"
	"github.com/dkellaway/vantage/internal/models"
)

// StatementSource reads holdings from a brokerage statement PDF. The
// statement path is fixed at construction; every user sees the same
// snapshot, matching how a single downloaded statement is used.
type StatementSource struct {
	path   string
	logger *common.Logger
}

// NewStatementSource creates a statement-backed holdings source
func NewStatementSource(path string, logger *common.Logger) *StatementSource {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &StatementSource{
		path:   path,
		logger: logger,
	}
}

// GetHoldings extracts holding rows from the statement PDF
func (s *StatementSource) GetHoldings(ctx context.Context, userID string) ([]*models.HoldingRecord, error) {
	text, err := extractStatementText(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read statement %s: %w", s.path, err)
	}

	records := ParseStatementText(text)
	if len(records) == 0 {
		return nil, fmt.Errorf("no holdings found in statement %s", s.path)
	}

	s.logger.Debug().Int("holdings", len(records)).Str("path", s.path).Msg("Parsed statement")
	return records, nil
}

// Origin identifies this source
func (s *StatementSource) Origin() string {
	return "statement"
}

// extractStatementText pulls plain text from every page of the PDF
func extractStatementText(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var sb strings.Builder
	totalPages := r.NumPage()

	for i := 1; i <= totalPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

// ParseStatementText parses holding rows out of statement text. A row is
//
//	SYMBOL Name Words... QUANTITY AVG_COST Sector Words...
//
// where quantity and average cost are the first pair of adjacent numeric
// tokens after the symbol. Lines that do not fit the shape are skipped.
func ParseStatementText(text string) []*models.HoldingRecord {
	var records []*models.HoldingRecord

	for _, line := range strings.Split(text, "\n") {
		record := parseStatementLine(strings.TrimSpace(line))
		if record != nil {
			records = append(records, record)
		}
	}

	return records
}

func parseStatementLine(line string) *models.HoldingRecord {
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return nil
	}

	symbol := fields[0]
	if !isSymbolToken(symbol) {
		return nil
	}

	// Locate the quantity/avg-cost pair
	numStart := -1
	for i := 1; i < len(fields)-1; i++ {
		if isNumericToken(fields[i]) && isNumericToken(fields[i+1]) {
			numStart = i
			break
		}
	}
	if numStart < 2 {
		return nil
	}

	quantity, err := strconv.ParseFloat(strings.ReplaceAll(fields[numStart], ",", ""), 64)
	if err != nil || quantity <= 0 {
		return nil
	}
	avgCost, err := strconv.ParseFloat(strings.ReplaceAll(fields[numStart+1], ",", ""), 64)
	if err != nil || avgCost < 0 {
		return nil
	}

	name := strings.Join(fields[1:numStart], " ")
	sector := strings.Join(fields[numStart+2:], " ")
	if sector == "" {
		sector = models.SectorUnknown
	}

	record := &models.HoldingRecord{
		Symbol:   symbol,
		Name:     name,
		Quantity: quantity,
		AvgCost:  avgCost,
		Sector:   sector,
	}
	record.Normalize()
	return record
}

// isSymbolToken reports whether a token looks like a ticker symbol
func isSymbolToken(token string) bool {
	if len(token) < 1 || len(token) > 6 {
		return false
	}
	for _, r := range token {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// isNumericToken reports whether a token parses as a non-negative number
func isNumericToken(token string) bool {
	token = strings.ReplaceAll(token, ",", "")
	v, err := strconv.ParseFloat(token, 64)
	return err == nil && v >= 0
}

// Ensure StatementSource implements HoldingsSource
var _ interfaces.HoldingsSource = (*StatementSource)(nil)
