package services

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/orbitware/orbit-backend/internal/logger"
	"github.com/orbitware/orbit-backend/internal/types"
	"github.com/orbitware/orbit-backend/internal/utils"
)

// DocumentService renders an accepted policy into a formatted certificate.
// Pure formatting over already-computed values; no pricing happens here.
type DocumentService interface {
	RenderPolicyDocument(policy *types.Policy, user *types.User, plan *types.InsurancePlan) (string, error)
}

type documentService struct {
	log       *logger.Logger
	outputDir string
}

func NewDocumentService(log *logger.Logger) DocumentService {
	serviceLog := log.With("service", "DocumentService")
	outputDir := utils.GetEnv("DOCUMENT_DIR", "documents", log)
	return &documentService{log: serviceLog, outputDir: outputDir}
}

func (ds *documentService) RenderPolicyDocument(policy *types.Policy, user *types.User, plan *types.InsurancePlan) (string, error) {
	if err := os.MkdirAll(ds.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create document dir: %w", err)
	}
	content := renderPolicyText(policy, user, plan, time.Now())
	path := filepath.Join(ds.outputDir, fmt.Sprintf("policy_%s.txt", policy.PolicyNumber))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write policy document: %w", err)
	}
	ds.log.Info("Rendered policy document", "path", path, "policy_number", policy.PolicyNumber)
	return path, nil
}

func renderPolicyText(policy *types.Policy, user *types.User, plan *types.InsurancePlan, now time.Time) string {
	var b strings.Builder
	line := strings.Repeat("=", 64)

	b.WriteString(line + "\n")
	b.WriteString(center("ORBIT INSURANCE") + "\n")
	b.WriteString(center("Insurance Policy Certificate") + "\n")
	b.WriteString(line + "\n\n")

	b.WriteString("POLICY DETAILS\n")
	writeField(&b, "Policy Number", policy.PolicyNumber)
	writeField(&b, "Issue Date", now.Format("January 2, 2006"))
	writeField(&b, "Status", strings.ToUpper(policy.Status))
	writeField(&b, "Start Date", policy.StartDate.Format("January 2, 2006"))
	writeField(&b, "End Date", policy.EndDate.Format("January 2, 2006"))
	b.WriteString("\n")

	b.WriteString("POLICYHOLDER INFORMATION\n")
	writeField(&b, "Full Name", orNA(user.FullName))
	writeField(&b, "Email", orNA(user.Email))
	writeField(&b, "Phone", orNA(user.Phone))
	if user.Age != nil {
		writeField(&b, "Age", fmt.Sprintf("%d", *user.Age))
	} else {
		writeField(&b, "Age", "N/A")
	}
	b.WriteString("\n")

	b.WriteString("COVERAGE DETAILS\n")
	writeField(&b, "Plan Name", orNA(plan.Name))
	writeField(&b, "Provider", orNA(plan.Provider))
	writeField(&b, "Category", orNA(plan.Category))
	writeField(&b, "Coverage Amount", fmt.Sprintf("$%.2f", policy.CoverageAmount))
	writeField(&b, "Annual Premium", fmt.Sprintf("$%.2f", policy.Premium))
	writeField(&b, "Monthly Premium", fmt.Sprintf("$%.2f", policy.Premium/12))
	b.WriteString("\n")

	if features := decodeFeatures(plan); len(features) > 0 {
		b.WriteString("PLAN FEATURES\n")
		for _, f := range features {
			b.WriteString("  * " + f + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("TERMS AND CONDITIONS\n")
	b.WriteString("This policy is subject to the terms and conditions set forth by\n")
	b.WriteString("ORBIT Insurance and the underwriting provider. Coverage becomes\n")
	b.WriteString("effective upon receipt of the first premium payment. The\n")
	b.WriteString("policyholder agrees to pay premiums on time and provide accurate\n")
	b.WriteString("information. Claims must be filed within the specified timeframe\n")
	b.WriteString("as outlined in the complete policy documentation.\n\n")

	b.WriteString(line + "\n")
	b.WriteString(fmt.Sprintf("Generated on %s\n", now.Format("January 2, 2006 at 3:04 PM")))
	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "  %-18s %s\n", label+":", value)
}

func center(s string) string {
	const width = 64
	if len(s) >= width {
		return s
	}
	pad := (width - len(s)) / 2
	return strings.Repeat(" ", pad) + s
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}

func decodeFeatures(plan *types.InsurancePlan) []string {
	if plan == nil || len(plan.Features) == 0 {
		return nil
	}
	var features []string
	if err := json.Unmarshal(plan.Features, &features); err != nil {
		return nil
	}
	return features
}
