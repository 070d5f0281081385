package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Inquiry statuses that trigger a notification to the submitter when set.
const (
	InquiryStatusNew        = "new"
	InquiryStatusContacted  = "contacted"
	InquiryStatusInProgress = "in_progress"
	InquiryStatusCompleted  = "completed"
)

// ProjectInquiry is a project request submitted through the public form,
// optionally carrying uploaded attachment URLs.
type ProjectInquiry struct {
	ID            bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name          string        `bson:"name" json:"name"`
	Email         string        `bson:"email" json:"email"`
	Phone         string        `bson:"phone" json:"phone"`
	Country       string        `bson:"country" json:"country"`
	City          string        `bson:"city,omitempty" json:"city,omitempty"`
	State         string        `bson:"state,omitempty" json:"state,omitempty"`
	Company       string        `bson:"company,omitempty" json:"company,omitempty"`
	ClientType    string        `bson:"clientType" json:"clientType"`
	Domain        string        `bson:"domain" json:"domain"`
	ProjectType   string        `bson:"projectType" json:"projectType"`
	StartDate     string        `bson:"startDate,omitempty" json:"startDate,omitempty"`
	Timeline      string        `bson:"timeline" json:"timeline"`
	Budget        string        `bson:"budget" json:"budget"`
	Message       string        `bson:"message" json:"message"`
	AttachedFiles []string      `bson:"attached_files" json:"attached_files"`
	Status        string        `bson:"status" json:"status"`
	CreatedAt     time.Time     `bson:"created_at" json:"created_at"`
}
