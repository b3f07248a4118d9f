package models

// QueuedEmail is an outbound email handed to the external mailer.
// This service only enqueues; delivery happens outside of it.
type QueuedEmail struct {
	MailID    string `dynamodbav:"mailId" json:"mailId"`
	To        string `dynamodbav:"to" json:"to"`
	Subject   string `dynamodbav:"subject" json:"subject"`
	Text      string `dynamodbav:"text" json:"text"`
	UserID    string `dynamodbav:"userId,omitempty" json:"userId,omitempty"`
	Type      string `dynamodbav:"type,omitempty" json:"type,omitempty"`
	CreatedAt string `dynamodbav:"createdAt" json:"createdAt"`
}

// MailTable is the DynamoDB table name for the email queue
const MailTable = "Mail"
