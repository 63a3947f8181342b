package usecase_test

import (
	"context"

	"items-fixture-api/internal/catalog"
	"items-fixture-api/internal/catalog/repository"
)

// mockRepo implements repository.Repository with overridable behavior per
// test case.
type mockRepo struct {
	listFunc   func(ctx context.Context) ([]catalog.Item, error)
	getOneFunc func(ctx context.Context, opt repository.GetOneItemOptions) (catalog.Item, error)
}

func (m *mockRepo) ListItems(ctx context.Context) ([]catalog.Item, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockRepo) GetOneItem(ctx context.Context, opt repository.GetOneItemOptions) (catalog.Item, error) {
	if m.getOneFunc != nil {
		return m.getOneFunc(ctx, opt)
	}
	return catalog.Item{}, repository.ErrItemNotFound
}

// mockLogger swallows all log output.
type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...any)                    {}
func (mockLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (mockLogger) Info(ctx context.Context, args ...any)                     {}
func (mockLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (mockLogger) Warn(ctx context.Context, args ...any)                     {}
func (mockLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (mockLogger) Error(ctx context.Context, args ...any)                    {}
func (mockLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (mockLogger) DPanic(ctx context.Context, args ...any)                   {}
func (mockLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (mockLogger) Panic(ctx context.Context, args ...any)                    {}
func (mockLogger) Panicf(ctx context.Context, template string, args ...any)  {}
func (mockLogger) Fatal(ctx context.Context, args ...any)                    {}
func (mockLogger) Fatalf(ctx context.Context, template string, args ...any)  {}
