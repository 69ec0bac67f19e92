package model

import (
	"time"
)

type SavedJob struct {
	Id             int64
	JobId          int64
	UserId         int64
	CreateDatetime time.Time
	UpdateDatetime time.Time
}

type SavedJobResponse struct {
	Id               int64     `json:"id"`
	JobId            int64     `json:"jobId"`
	JobTitle         string    `json:"jobTitle"`
	JobTypeName      string    `json:"jobTypeName"`
	CategoryName     string    `json:"categoryName"`
	Location         string    `json:"location"`
	JobStatus        int       `json:"jobStatus"`
	ApplicationCount int       `json:"applicationCount"`
	SavedDatetime    time.Time `json:"savedDatetime"`
}
