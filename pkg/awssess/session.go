package awssess

import (
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
)

var sess *session.Session

// MustGetSession returns the shared session, building it on first use. Local
// runs pin the profile and region, deployed runs inherit the Lambda role.
func MustGetSession() *session.Session {
	if sess != nil {
		return sess
	}

	switch os.Getenv("STAGE") {
	case "local":
		sess = session.Must(session.NewSessionWithOptions(session.Options{
			SharedConfigState: session.SharedConfigEnable,
			Profile:           os.Getenv("AWS_PROFILE"),
			Config: aws.Config{
				Region: aws.String("us-east-1"),
			},
		}))
	default:
		sess = session.Must(session.NewSessionWithOptions(session.Options{
			SharedConfigState: session.SharedConfigEnable,
		}))
	}
	return sess
}
