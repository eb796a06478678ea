package domain

import (
	"math"
	"sort"
	"strings"
)

func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

func TotalDue(quantity int, d Draw) float64 {
	return RoundCents(float64(quantity) * d.PricePerTicket())
}

func NewMemberAssignment(a Assignment, d Draw) MemberAssignment {
	due := TotalDue(a.Quantity, d)
	return MemberAssignment{
		Assignment:     a,
		Draw:           d,
		PricePerTicket: d.PricePerTicket(),
		TotalDue:       due,
		AmountPending:  RoundCents(due - a.AmountPaid),
	}
}

func NewMemberStatement(rows []MemberAssignment) MemberStatement {
	st := MemberStatement{Assignments: rows}
	if st.Assignments == nil {
		st.Assignments = []MemberAssignment{}
	}
	for _, r := range rows {
		st.TotalDue += r.TotalDue
		st.TotalPaid += r.AmountPaid
		st.TotalPending += r.AmountPending
	}
	st.TotalDue = RoundCents(st.TotalDue)
	st.TotalPaid = RoundCents(st.TotalPaid)
	st.TotalPending = RoundCents(st.TotalPending)
	return st
}

// MergeRoster produces one line per member, filling in defaults for
// members that have no assignment for the draw. Ordering follows the
// roster: first family name, then given name.
func MergeRoster(members []Member, assignments []Assignment) []DrawAssignment {
	byMember := make(map[string]Assignment, len(assignments))
	for _, a := range assignments {
		byMember[a.MemberID] = a
	}

	sorted := make([]Member, len(members))
	copy(sorted, members)
	SortMembers(sorted)

	out := make([]DrawAssignment, 0, len(sorted))
	for _, m := range sorted {
		row := DrawAssignment{
			MemberID:   m.ID,
			MemberName: m.DisplayName(),
			Status:     AssignmentPending,
		}
		if a, ok := byMember[m.ID]; ok {
			id := a.ID
			row.AssignmentID = &id
			row.Quantity = a.Quantity
			row.AmountPaid = a.AmountPaid
			if a.Status != "" {
				row.Status = a.Status
			}
		}
		out = append(out, row)
	}
	return out
}

func SortMembers(ms []Member) {
	sort.SliceStable(ms, func(i, j int) bool {
		fi := strings.ToLower(ms[i].FirstFamilyName)
		fj := strings.ToLower(ms[j].FirstFamilyName)
		if fi != fj {
			return fi < fj
		}
		return strings.ToLower(ms[i].GivenName) < strings.ToLower(ms[j].GivenName)
	})
}

func SummarizeDraw(d Draw, rows []DrawAssignment) DrawSummary {
	s := DrawSummary{Draw: d}
	for _, r := range rows {
		s.Tickets += r.Quantity
		if r.Quantity > 0 {
			s.MembersWithTickets++
		}
		s.TotalPaid += r.AmountPaid
	}
	s.FaceValue = RoundCents(float64(s.Tickets) * d.TicketPrice)
	s.SurchargeTotal = RoundCents(float64(s.Tickets) * d.Surcharge)
	s.TotalDue = TotalDue(s.Tickets, d)
	s.TotalPaid = RoundCents(s.TotalPaid)
	s.TotalPending = RoundCents(s.TotalDue - s.TotalPaid)
	return s
}
