package service

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
	"github.com/sirupsen/logrus"

	"kindergarden/internal/difficulty"
	"kindergarden/internal/models"
)

// ReportService emails parents a progress summary via Amazon SES. With no
// sender configured it runs disabled and every send is a logged no-op, so
// the game works without AWS credentials.
type ReportService struct {
	client    *sesv2.Client
	fromEmail string
	enabled   bool
}

// NewReportService creates a new report service
func NewReportService(awsRegion, fromEmail string) (*ReportService, error) {
	if fromEmail == "" {
		logrus.Info("progress reports disabled: EMAIL_SENDER not configured")
		return &ReportService{enabled: false}, nil
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(),
		awsconfig.WithRegion(awsRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"from":   fromEmail,
		"region": awsRegion,
	}).Info("progress reports enabled")

	return &ReportService{
		client:    sesv2.NewFromConfig(cfg),
		fromEmail: fromEmail,
		enabled:   true,
	}, nil
}

// IsEnabled returns whether the report service is enabled
func (s *ReportService) IsEnabled() bool {
	return s.enabled
}

// SendProgressReport emails one child's progress summary
func (s *ReportService) SendProgressReport(ctx context.Context, toEmail string, player *models.Player, stats *models.PlayerStats) error {
	if !s.enabled {
		logrus.WithField("to", toEmail).Debug("skipping progress report (service disabled)")
		return nil
	}

	name := player.DisplayName
	subject := fmt.Sprintf("%s's Garden Progress", name)

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
	<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
		<h1 style="color: #4caf50;">%s %s's Garden</h1>
		<p>%s's plant has grown to <strong>%s</strong> (stage %d of %d).</p>
		<ul>
			<li>Total score: <strong>%d</strong></li>
			<li>Daily streak: <strong>%d</strong></li>
			<li>Questions answered: <strong>%d</strong> (%.0f%% correct)</li>
			<li>Activities completed: <strong>%d</strong></li>
		</ul>
		<p>Keep watering that garden!</p>
	</div>
</body>
</html>`,
		difficulty.StageEmoji(player.PlantStage), name, name,
		difficulty.StageName(player.PlantStage), player.PlantStage+1, difficulty.StageCount(),
		player.Score, player.Streak,
		stats.QuestionsAnswered, stats.Accuracy*100, stats.TotalSessions)

	textBody := fmt.Sprintf(`%s's Garden

Plant: %s (stage %d of %d)
Total score: %d
Daily streak: %d
Questions answered: %d (%.0f%% correct)
Activities completed: %d

Keep watering that garden!
`,
		name, difficulty.StageName(player.PlantStage), player.PlantStage+1, difficulty.StageCount(),
		player.Score, player.Streak,
		stats.QuestionsAnswered, stats.Accuracy*100, stats.TotalSessions)

	return s.sendEmail(ctx, toEmail, subject, htmlBody, textBody)
}

// sendEmail sends an email using Amazon SES
func (s *ReportService) sendEmail(ctx context.Context, toEmail, subject, htmlBody, textBody string) error {
	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(s.fromEmail),
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{
					Data:    aws.String(subject),
					Charset: aws.String("UTF-8"),
				},
				Body: &types.Body{
					Html: &types.Content{
						Data:    aws.String(htmlBody),
						Charset: aws.String("UTF-8"),
					},
					Text: &types.Content{
						Data:    aws.String(textBody),
						Charset: aws.String("UTF-8"),
					},
				},
			},
		},
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("failed to send report to %s: %w", toEmail, err)
	}

	logrus.WithFields(logrus.Fields{
		"to":      toEmail,
		"subject": subject,
	}).Info("progress report sent")
	return nil
}
