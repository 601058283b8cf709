package translate

import "strings"

// Merge combines translations destined for the same file.
//
// Head lines are deduplicated in first-seen order and placed first, each on
// its own line. Outputs follow, joined by newlines. The first DepsMarker in
// the joined body is replaced with the sorted union of all deps (one per
// line, with a trailing newline, or nothing when there are none). Every
// later marker is deleted. Nil translations are skipped.
func Merge(ts ...*Translation) string {
	var (
		head    []string
		seen    = make(map[string]bool)
		deps    = make(DepSet)
		outputs = make([]string, 0, len(ts))
	)
	for _, t := range ts {
		if t == nil {
			continue
		}
		for _, line := range t.Head {
			if !seen[line] {
				seen[line] = true
				head = append(head, line)
			}
		}
		deps.Union(t.Deps)
		outputs = append(outputs, t.Output)
	}

	var b strings.Builder
	for _, line := range head {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString(SubstituteDeps(strings.Join(outputs, "\n"), deps))
	return b.String()
}

// SubstituteDeps replaces the first DepsMarker in body with deps and deletes
// any further markers. A body without a marker is returned unchanged.
func SubstituteDeps(body string, deps DepSet) string {
	before, after, found := strings.Cut(body, DepsMarker)
	if !found {
		return body
	}
	var rendered string
	if deps.Len() > 0 {
		rendered = strings.Join(deps.Sorted(), "\n") + "\n"
	}
	return before + rendered + strings.ReplaceAll(after, DepsMarker, "")
}

// CollectIssues concatenates the issues of ts in order.
func CollectIssues(ts ...*Translation) []Issue {
	var out []Issue
	for _, t := range ts {
		if t != nil {
			out = append(out, t.Issues...)
		}
	}
	return out
}
