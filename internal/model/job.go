package model

import (
	"time"
)

const (
	JobStatusInactive = 0
	JobStatusActive   = 1
)

type Category struct {
	Id   int64  `json:"id"`
	Name string `json:"name"`
}

type JobType struct {
	Id   int64  `json:"id"`
	Name string `json:"name"`
}

type JobFormOptionsResponse struct {
	Categories []Category `json:"categories"`
	JobTypes   []JobType  `json:"jobTypes"`
}

type JobRequest struct {
	Title           string  `json:"title" validate:"required,min=5,max=200"`
	Category        int64   `json:"category" validate:"required,gt=0"`
	JobType         int64   `json:"job_type" validate:"required,gt=0"`
	Vacancy         int     `json:"vacancy" validate:"required,min=1"`
	Salary          *string `json:"salary" validate:"omitempty,max=100"`
	Location        string  `json:"location" validate:"required,max=100"`
	Description     string  `json:"description" validate:"required"`
	Benefits        *string `json:"benefits"`
	Responsibility  *string `json:"responsibility"`
	Qualifications  *string `json:"qualifications"`
	Keywords        *string `json:"keywords" validate:"omitempty,max=255"`
	Experience      *string `json:"experience" validate:"omitempty,max=50"`
	CompanyName     string  `json:"company_name" validate:"required,min=5,max=100"`
	CompanyLocation *string `json:"company_location" validate:"omitempty,max=100"`
	CompanyWebsite  *string `json:"company_website" validate:"omitempty,url"`
}

type Job struct {
	Id              int64
	Title           string
	CategoryId      int64
	JobTypeId       int64
	UserId          int64
	Vacancy         int
	Salary          *string
	Location        string
	Description     string
	Benefits        *string
	Responsibility  *string
	Qualifications  *string
	Keywords        *string
	Experience      *string
	CompanyName     string
	CompanyLocation *string
	CompanyWebsite  *string
	Status          int
	IsFeatured      bool
	CreateDatetime  time.Time
	UpdateDatetime  time.Time
}

type JobResponse struct {
	Id              int64     `json:"id"`
	Title           string    `json:"title"`
	CategoryId      int64     `json:"categoryId"`
	JobTypeId       int64     `json:"jobTypeId"`
	Vacancy         int       `json:"vacancy"`
	Salary          *string   `json:"salary"`
	Location        string    `json:"location"`
	Description     string    `json:"description"`
	Benefits        *string   `json:"benefits"`
	Responsibility  *string   `json:"responsibility"`
	Qualifications  *string   `json:"qualifications"`
	Keywords        *string   `json:"keywords"`
	Experience      *string   `json:"experience"`
	CompanyName     string    `json:"companyName"`
	CompanyLocation *string   `json:"companyLocation"`
	CompanyWebsite  *string   `json:"companyWebsite"`
	Status          int       `json:"status"`
	CreateDatetime  time.Time `json:"createDatetime"`
	UpdateDatetime  time.Time `json:"updateDatetime"`
}

// MyJobResponse is one row of the "my jobs" listing.
type MyJobResponse struct {
	Id               int64     `json:"id"`
	Title            string    `json:"title"`
	JobTypeName      string    `json:"jobTypeName"`
	Location         string    `json:"location"`
	Status           int       `json:"status"`
	ApplicationCount int       `json:"applicationCount"`
	CreateDatetime   time.Time `json:"createDatetime"`
}
