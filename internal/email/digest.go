package email

import (
	"fmt"
	"sort"
	"strings"
)

// DigestEntry is one membership listed in an expiry digest.
type DigestEntry struct {
	MemberName string
	PlanName   string
	EndDate    string
	RenewBy    string
}

type ExpiryDigest struct {
	GymName string
	GymMail string
	Entries []DigestEntry
}

// BuildExpiryDigest renders the digest for one gym. Entries are ordered by
// end date, then member name.
func BuildExpiryDigest(tm *TemplateManager, digest ExpiryDigest) (*Email, error) {
	entries := append([]DigestEntry(nil), digest.Entries...)
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].EndDate != entries[j].EndDate {
			return entries[i].EndDate < entries[j].EndDate
		}
		return entries[i].MemberName < entries[j].MemberName
	})
	digest.Entries = entries

	html, err := tm.Render(ExpiryDigestTemplate, digest)
	if err != nil {
		return nil, err
	}

	var text strings.Builder
	fmt.Fprintf(&text, "%d membership(s) entered the renewal grace period:\n", len(entries))
	for _, e := range entries {
		fmt.Fprintf(&text, "- %s (%s) ended %s, renew by %s\n", e.MemberName, e.PlanName, e.EndDate, e.RenewBy)
	}

	return &Email{
		To:       []string{digest.GymMail},
		Subject:  fmt.Sprintf("%s: %d membership(s) awaiting renewal", digest.GymName, len(entries)),
		Body:     text.String(),
		HTMLBody: html,
	}, nil
}
