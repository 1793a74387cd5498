package models

import "testing"

func TestValidLeadStatusAllowsOnlyTheFiveKnownValues(t *testing.T) {
	t.Parallel()

	for _, status := range []string{
		LeadStatusNew, LeadStatusContacted, LeadStatusScheduled, LeadStatusWon, LeadStatusLost,
	} {
		if !ValidLeadStatus(status) {
			t.Fatalf("expected %q to be a valid lead status", status)
		}
	}

	for _, status := range []string{"", "new", "Archived", "In Progress", "done"} {
		if ValidLeadStatus(status) {
			t.Fatalf("expected %q to be rejected as a lead status", status)
		}
	}
}

func TestValidJobStatusAllowsOnlyTheFourKnownValues(t *testing.T) {
	t.Parallel()

	for _, status := range []string{
		JobStatusScheduled, JobStatusInProgress, JobStatusCompleted, JobStatusCanceled,
	} {
		if !ValidJobStatus(status) {
			t.Fatalf("expected %q to be a valid job status", status)
		}
	}

	for _, status := range []string{"", "scheduled", "Won", "Paid", "Done"} {
		if ValidJobStatus(status) {
			t.Fatalf("expected %q to be rejected as a job status", status)
		}
	}
}
