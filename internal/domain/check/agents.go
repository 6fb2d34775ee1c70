package check

import (
	"strings"

	"github.com/speclint/speclint/internal/domain"
)

var agentContextFiles = []string{
	"dev-docs/sdd/CLAUDE.md",
	"dev-docs/sdd/AGENTS.md",
	"dev-docs/cli/CLAUDE.md",
	"dev-docs/cli/AGENTS.md",
}

var claudeSections = []string{"## Role", "## Allowed Tools", "## Safety Boundaries"}

// AgentContexts verifies the agent context documents exist and carry their
// expected sections. Unlike Governance, missing sections here are tolerated
// warnings: only a missing file fails the check.
func AgentContexts(scan *domain.ScanResult) domain.CheckOutcome {
	out := domain.CheckOutcome{Name: "Agent Context Files", Passed: true}

	for _, path := range agentContextFiles {
		if !scan.Files[path] {
			out.Findings = append(out.Findings, domain.Errorf("Missing agent context: %s", path))
			out.Passed = false
			continue
		}

		content := scan.Texts[path]

		if strings.HasSuffix(path, "CLAUDE.md") {
			for _, section := range claudeSections {
				if !strings.Contains(content, section) {
					out.Findings = append(out.Findings,
						domain.Warnf("Missing section '%s' in %s", section, path))
				}
			}
		}

		if strings.HasSuffix(path, "AGENTS.md") {
			if !strings.Contains(content, "## Supported Agents") {
				out.Findings = append(out.Findings,
					domain.Warnf("Missing 'Supported Agents' section in %s", path))
			}
		}
	}

	return out
}
