package model

import (
	"time"
)

type JobApplication struct {
	Id             int64
	JobId          int64
	UserId         int64
	EmployerId     int64
	AppliedDate    time.Time
	CreateDatetime time.Time
	UpdateDatetime time.Time
}

type JobApplicationResponse struct {
	Id               int64     `json:"id"`
	JobId            int64     `json:"jobId"`
	JobTitle         string    `json:"jobTitle"`
	JobTypeName      string    `json:"jobTypeName"`
	CategoryName     string    `json:"categoryName"`
	Location         string    `json:"location"`
	JobStatus        int       `json:"jobStatus"`
	ApplicationCount int       `json:"applicationCount"`
	AppliedDate      time.Time `json:"appliedDate"`
}

type JobAppliedTemplateData struct {
	EmployerName   string
	JobTitle       string
	ApplicantName  string
	ApplicantEmail string
	ApplicantPhone *string
}
