package reconciler

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/draftboard/pkg/logging"
	"github.com/agentstation/draftboard/pkg/sources"
)

// Observer is notified of every reported issue.
type Observer interface {
	Observe(issue sources.Issue)
}

// Collector is the sources.Reporter for one run. Each issue becomes a Warn
// log line and a Report entry. It is not safe for concurrent use.
type Collector struct {
	logger    *zerolog.Logger
	observers []Observer
	report    Report
}

// NewCollector creates a collector logging to logger.
func NewCollector(logger *zerolog.Logger, observers ...Observer) *Collector {
	if logger == nil {
		logger = logging.Default()
	}
	return &Collector{logger: logger, observers: observers}
}

// Report implements sources.Reporter.
func (c *Collector) Report(issue sources.Issue) {
	event := c.logger.Warn().
		Str("source", string(issue.Source)).
		Str("kind", string(issue.Kind))
	if issue.Key != "" {
		event = event.Str("key", string(issue.Key))
	}
	if issue.Name != "" {
		event = event.Str("name", issue.Name)
	}
	if issue.File != "" {
		event = event.Str("file", issue.File)
	}
	if issue.Err != nil {
		event = event.Err(issue.Err)
	}
	event.Msg(issue.Message)

	c.report.Issues = append(c.report.Issues, issue)
	for _, o := range c.observers {
		o.Observe(issue)
	}
}

// Snapshot returns a copy of the report so far.
func (c *Collector) Snapshot() *Report {
	issues := make([]sources.Issue, len(c.report.Issues))
	copy(issues, c.report.Issues)
	return &Report{Issues: issues}
}
