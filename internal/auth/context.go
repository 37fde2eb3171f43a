package auth

import "context"

type contextKey string

const subjectContextKey contextKey = "subject"

// SetSubjectContext сохраняет владельца токена в контексте
func SetSubjectContext(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, subjectContextKey, subject)
}

// GetSubjectFromContext извлекает владельца токена из контекста
func GetSubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(subjectContextKey).(string)
	return subject, ok
}
