package handler

import "github.com/talentflow/talentflow/pkg/model"

// Applications confirmed with a match score under this are rejected at
// apply time and pointed at upskilling resources. Course recommendations
// are only attached below the same threshold.
const screeningPassScore = 80.0

const lowScoreAdvisory = "Your resume match score is below 80%. Your application has been flagged for review, and we recommend upskilling."

// screeningOutcome applies the gatekeeper rule when a candidate confirms
// an application.
func screeningOutcome(matchScore float64) (model.ApplicationStatus, string) {
	if matchScore < screeningPassScore {
		return model.StatusRejected, lowScoreAdvisory
	}
	return model.StatusApplied, ""
}

// completedInterviewUpdates is the application change applied when a mock
// interview session completes. Finishing the interview is what advances
// the application to the interview stage; the aggregate score lives on
// the session report and plays no part here.
func completedInterviewUpdates(overallScore float64) map[string]interface{} {
	return map[string]interface{}{"status": model.StatusInterview}
}
