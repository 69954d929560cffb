package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InterviewExperience is a student's interview write-up submitted through the
// public form. Submissions are immutable once stored; admins may only read and
// delete them.
type InterviewExperience struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName       string             `bson:"fullName" json:"fullName"`
	Email          string             `bson:"email" json:"email"`
	University     string             `bson:"university" json:"university"`
	Course         string             `bson:"course" json:"course"`
	GraduationYear string             `bson:"graduationYear" json:"graduationYear"`
	LinkedinURL    string             `bson:"linkedinUrl,omitempty" json:"linkedinUrl,omitempty"`

	CompanyName string `bson:"companyName" json:"companyName"`
	JobTitle    string `bson:"jobTitle" json:"jobTitle"`
	JobLocation string `bson:"jobLocation" json:"jobLocation"`
	Salary      string `bson:"salary" json:"salary"`

	// Canonical round count. The form historically collected free text like
	// "5+"; it is normalized to an integer before it reaches the store.
	TotalRounds           int    `bson:"totalRounds" json:"totalRounds"`
	TechnicalRoundDetails string `bson:"technicalRoundDetails" json:"technicalRoundDetails"`
	HRRoundDetails        string `bson:"hrRoundDetails" json:"hrRoundDetails"`

	PreparationStrategy string `bson:"preparationStrategy" json:"preparationStrategy"`
	ChallengingQuestion string `bson:"challengingQuestion" json:"challengingQuestion"`
	Advice              string `bson:"advice" json:"advice"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
