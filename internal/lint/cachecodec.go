package lint

import (
	"caselint/internal/cache"
	"caselint/internal/diag"
	"caselint/internal/fix"
	"caselint/internal/source"
)

func encodeFailures(path string, failures []*Failure) *cache.Payload {
	p := &cache.Payload{Path: path, Findings: make([]cache.Finding, 0, len(failures))}
	for _, f := range failures {
		finding := cache.Finding{
			Rule:     f.ruleName,
			Message:  f.message,
			Severity: uint8(f.severity),
			Start:    f.span.Start,
			End:      f.span.End,
		}
		if f.fix != nil {
			finding.FixTitle = f.fix.Title()
			finding.Applicability = uint8(f.fix.Applicability())
			for _, e := range f.fix.Edits() {
				finding.Edits = append(finding.Edits, cache.Edit{
					Kind:   uint8(e.Kind),
					Offset: e.Offset,
					Length: e.Length,
					Text:   e.Text,
				})
			}
		}
		p.Findings = append(p.Findings, finding)
	}
	return p
}

func decodeFailures(file source.FileID, p *cache.Payload) []*Failure {
	out := make([]*Failure, 0, len(p.Findings))
	for _, finding := range p.Findings {
		var f *fix.Fix
		if len(finding.Edits) > 0 {
			edits := make([]fix.TextEdit, 0, len(finding.Edits))
			for _, e := range finding.Edits {
				edits = append(edits, fix.TextEdit{
					Kind:   fix.EditKind(e.Kind),
					Offset: e.Offset,
					Length: e.Length,
					Text:   e.Text,
				})
			}
			f = fix.New(finding.Rule, edits,
				fix.WithTitle(finding.FixTitle),
				fix.WithApplicability(fix.Applicability(finding.Applicability)))
		}
		failure := NewFailure(finding.Rule, finding.Message, source.Span{File: file, Start: finding.Start, End: finding.End}, f)
		failure.severity = diag.Severity(finding.Severity)
		out = append(out, failure)
	}
	return out
}
