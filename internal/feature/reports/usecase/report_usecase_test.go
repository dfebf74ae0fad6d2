package usecase

import (
	"context"
	"errors"
	"testing"

	tradingentity "broker_backend/internal/feature/trading/domain/entity"
)

// mockUserDirectory is a mock implementation of the UserDirectory interface.
type mockUserDirectory struct {
	ListRecipientsFunc func(ctx context.Context) ([]Recipient, error)
}

func (m *mockUserDirectory) ListRecipients(ctx context.Context) ([]Recipient, error) {
	if m.ListRecipientsFunc != nil {
		return m.ListRecipientsFunc(ctx)
	}
	return nil, nil
}

// mockPortfolioReader is a mock implementation of the PortfolioReader interface.
type mockPortfolioReader struct {
	ListHoldingsFunc func(ctx context.Context, username string) ([]tradingentity.Holding, error)
}

func (m *mockPortfolioReader) ListHoldings(ctx context.Context, username string) ([]tradingentity.Holding, error) {
	if m.ListHoldingsFunc != nil {
		return m.ListHoldingsFunc(ctx, username)
	}
	return []tradingentity.Holding{}, nil
}

// mockReportBuilder is a mock implementation of the ReportBuilder interface.
type mockReportBuilder struct {
	BuildFunc func(username string, holdings []tradingentity.Holding) ([]byte, error)
}

func (m *mockReportBuilder) Build(username string, holdings []tradingentity.Holding) ([]byte, error) {
	if m.BuildFunc != nil {
		return m.BuildFunc(username, holdings)
	}
	return []byte("report"), nil
}

// sentMail records one delivered report.
type sentMail struct {
	to             string
	attachmentName string
}

// mockMailer is a mock implementation of the Mailer interface.
type mockMailer struct {
	SendFunc func(to, subject, body, attachmentName string, attachment []byte) error
	sent     []sentMail
}

func (m *mockMailer) Send(to, subject, body, attachmentName string, attachment []byte) error {
	if m.SendFunc != nil {
		if err := m.SendFunc(to, subject, body, attachmentName, attachment); err != nil {
			return err
		}
	}
	m.sent = append(m.sent, sentMail{to: to, attachmentName: attachmentName})
	return nil
}

func TestReportUsecase_SendPortfolioReports(t *testing.T) {
	t.Run("sends one report per user with an email", func(t *testing.T) {
		users := &mockUserDirectory{
			ListRecipientsFunc: func(ctx context.Context) ([]Recipient, error) {
				return []Recipient{
					{Username: "alice", Email: "alice@example.com"},
					{Username: "bob", Email: "bob@example.com"},
				}, nil
			},
		}
		mailer := &mockMailer{}

		uc := NewReportUsecase(users, &mockPortfolioReader{}, &mockReportBuilder{}, mailer)
		sent, err := uc.SendPortfolioReports(context.Background())

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sent != 2 {
			t.Errorf("expected 2 reports sent, got %d", sent)
		}
		if len(mailer.sent) != 2 || mailer.sent[0].to != "alice@example.com" {
			t.Errorf("unexpected deliveries: %+v", mailer.sent)
		}
		if mailer.sent[0].attachmentName != "portfolio.xlsx" {
			t.Errorf("unexpected attachment name: %s", mailer.sent[0].attachmentName)
		}
	})

	t.Run("users without an email are skipped", func(t *testing.T) {
		users := &mockUserDirectory{
			ListRecipientsFunc: func(ctx context.Context) ([]Recipient, error) {
				return []Recipient{
					{Username: "alice", Email: "alice@example.com"},
					{Username: "noemail", Email: ""},
				}, nil
			},
		}
		mailer := &mockMailer{}

		uc := NewReportUsecase(users, &mockPortfolioReader{}, &mockReportBuilder{}, mailer)
		sent, err := uc.SendPortfolioReports(context.Background())

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sent != 1 {
			t.Errorf("expected 1 report sent, got %d", sent)
		}
	})

	t.Run("a failed delivery does not stop the run", func(t *testing.T) {
		users := &mockUserDirectory{
			ListRecipientsFunc: func(ctx context.Context) ([]Recipient, error) {
				return []Recipient{
					{Username: "alice", Email: "alice@example.com"},
					{Username: "bob", Email: "bob@example.com"},
				}, nil
			},
		}
		mailer := &mockMailer{
			SendFunc: func(to, subject, body, attachmentName string, attachment []byte) error {
				if to == "alice@example.com" {
					return errors.New("smtp timeout")
				}
				return nil
			},
		}

		uc := NewReportUsecase(users, &mockPortfolioReader{}, &mockReportBuilder{}, mailer)
		sent, err := uc.SendPortfolioReports(context.Background())

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sent != 1 {
			t.Errorf("expected 1 report sent, got %d", sent)
		}
	})

	t.Run("directory failure aborts the run", func(t *testing.T) {
		dirErr := errors.New("db down")
		users := &mockUserDirectory{
			ListRecipientsFunc: func(ctx context.Context) ([]Recipient, error) {
				return nil, dirErr
			},
		}

		uc := NewReportUsecase(users, &mockPortfolioReader{}, &mockReportBuilder{}, &mockMailer{})
		_, err := uc.SendPortfolioReports(context.Background())

		if !errors.Is(err, dirErr) {
			t.Errorf("expected directory error, got: %v", err)
		}
	})

	t.Run("a failed report build skips only that user", func(t *testing.T) {
		users := &mockUserDirectory{
			ListRecipientsFunc: func(ctx context.Context) ([]Recipient, error) {
				return []Recipient{
					{Username: "alice", Email: "alice@example.com"},
					{Username: "bob", Email: "bob@example.com"},
				}, nil
			},
		}
		builder := &mockReportBuilder{
			BuildFunc: func(username string, holdings []tradingentity.Holding) ([]byte, error) {
				if username == "alice" {
					return nil, errors.New("render failed")
				}
				return []byte("report"), nil
			},
		}
		mailer := &mockMailer{}

		uc := NewReportUsecase(users, &mockPortfolioReader{}, builder, mailer)
		sent, err := uc.SendPortfolioReports(context.Background())

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sent != 1 || len(mailer.sent) != 1 || mailer.sent[0].to != "bob@example.com" {
			t.Errorf("expected only bob's report, sent=%d deliveries=%+v", sent, mailer.sent)
		}
	})
}
