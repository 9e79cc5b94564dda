package interview

import "time"

// UserState is the per-user interview lifecycle record. Records are created
// lazily on the first mutating operation for a userId and are never deleted;
// fields accumulate over time, which is why most of them are omitempty.
type UserState struct {
	UserName            string     `json:"userName,omitempty"`
	InterviewActive     bool       `json:"interviewActive"`
	InterviewStartTime  *time.Time `json:"interviewStartTime,omitempty"`
	InterviewEndTime    *time.Time `json:"interviewEndTime,omitempty"`
	CompletedInterviews int        `json:"completedInterviews,omitempty"`
}
