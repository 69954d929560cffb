package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

// TemplateSubmissionNotification is sent to the site admin whenever a new
// interview experience arrives through the public form.
const TemplateSubmissionNotification = "submission_notification"

var submissionTmpl = template.Must(template.New(TemplateSubmissionNotification).Parse(`
<h2>New interview experience submitted</h2>
<p><strong>{{.FullName}}</strong> ({{.University}}) shared an experience at
<strong>{{.CompanyName}}</strong> for the role of <strong>{{.JobTitle}}</strong>.</p>
<p>Rounds: {{.TotalRounds}} &middot; Location: {{.JobLocation}}</p>
<p>Review it in the admin dashboard.</p>
`))

// Render produces subject, text and html bodies for a named template.
func Render(name string, data map[string]any) (subject, text, html string, err error) {
	switch name {
	case TemplateSubmissionNotification:
		var buf bytes.Buffer
		if err = submissionTmpl.Execute(&buf, data); err != nil {
			return "", "", "", err
		}
		subject = fmt.Sprintf("New submission: %v at %v", data["FullName"], data["CompanyName"])
		text = fmt.Sprintf("%v submitted an interview experience at %v (%v).",
			data["FullName"], data["CompanyName"], data["JobTitle"])
		return subject, text, buf.String(), nil
	default:
		return "", "", "", fmt.Errorf("unknown template %q", name)
	}
}
