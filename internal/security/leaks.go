package security

import (
	"fmt"
	"strings"

	"github.com/zricethezav/gitleaks/v8/detect"
	"github.com/zricethezav/gitleaks/v8/report"
)

// LeakScanner looks for credentials pasted into project fields before a
// document leaves the store in plain text.
type LeakScanner struct {
	detector *detect.Detector
}

// Finding represents a detected secret
type Finding struct {
	RuleID      string
	Description string
	Line        int
	Secret      string // Redacted
}

// NewLeakScanner creates a new leak scanner with default gitleaks rules
func NewLeakScanner() (*LeakScanner, error) {
	detector, err := detect.NewDetectorDefaultConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load gitleaks config: %w", err)
	}

	detector.Redact = 80

	return &LeakScanner{detector: detector}, nil
}

// ScanDocument scans an in-memory document such as an export.
func (s *LeakScanner) ScanDocument(doc []byte) []Finding {
	return convertFindings(s.detector.DetectString(string(doc)))
}

func convertFindings(findings []report.Finding) []Finding {
	out := make([]Finding, 0, len(findings))

	for _, f := range findings {
		out = append(out, Finding{
			RuleID:      f.RuleID,
			Description: f.Description,
			Line:        f.StartLine + 1,
			Secret:      f.Secret,
		})
	}

	return out
}

// FormatFindings formats findings for display
func FormatFindings(findings []Finding) string {
	if len(findings) == 0 {
		return ""
	}

	var sb strings.Builder

	_, _ = fmt.Fprintf(&sb, "Found %d potential secret(s) in the document:\n", len(findings))

	for _, f := range findings {
		_, _ = fmt.Fprintf(&sb, "  line %d: %s (%s) %s\n", f.Line, f.Description, f.RuleID, f.Secret)
	}

	return sb.String()
}
