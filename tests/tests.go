// Package tests carries test metadata (name and a unique id) on a
// context.Context, so that helpers and logs deep inside a test can be
// correlated with the test that ran them.
//
//	func TestMyFeature(t *testing.T) {
//	    ctx := tests.GetUniqueContext(t)
//	    info, _ := tests.GetTestInfo(ctx)
//	    // info.Id is unique to this run of this test
//	}
package tests

import (
	"context"
	"testing"

	"github.com/amp-labs/amp-algorithms/envutil"
	"github.com/amp-labs/amp-algorithms/logger"
	"github.com/google/uuid"
)

type contextKey string

const (
	testIdKey   contextKey = "testId"
	testNameKey contextKey = "testName"
	testTestKey contextKey = "testTest"
)

// GetUniqueContext returns t.Context() extended with a unique test id
// ("test-" followed by a UUID), the test name and t itself. Loggers taken
// from the context carry the id and name.
func GetUniqueContext(t *testing.T) context.Context {
	t.Helper()

	id := "test-" + uuid.New().String()

	ctx := context.WithValue(t.Context(), testTestKey, t)
	ctx = context.WithValue(ctx, testIdKey, id)
	ctx = context.WithValue(ctx, testNameKey, t.Name())

	return logger.With(ctx, "test_id", id, "test_name", t.Name())
}

// CheckSkipped skips the test when the boolean environment variable envKey
// is true. The optional arguments are the default value (false if omitted)
// and whether to invert the check, i.e. skip unless the variable is true.
//
//	tests.CheckSkipped(ctx, t, "SKIP_SLOW_TESTS", true)
func CheckSkipped(ctx context.Context, t *testing.T, envKey string, defaultValue ...bool) {
	t.Helper()

	defl := false
	invert := false

	if len(defaultValue) > 0 {
		defl = defaultValue[0]
	}

	if len(defaultValue) > 1 {
		invert = defaultValue[1]
	}

	shouldSkip := envutil.Bool(ctx, envKey, envutil.Default(defl)).ValueOrElse(defl)

	original := shouldSkip

	if invert {
		shouldSkip = !shouldSkip
	}

	if shouldSkip {
		t.Skipf("Skipping test because of environment variable: %s=%v",
			envKey, original)
	}
}

func GetTestName(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(testNameKey).(string)

	return name, ok
}

func GetTestId(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(testIdKey).(string)

	return id, ok
}

func GetTest(ctx context.Context) (*testing.T, bool) {
	t, ok := ctx.Value(testTestKey).(*testing.T)

	return t, ok
}

// Info is the test metadata found on a context.
type Info struct {
	Test *testing.T `json:"-"`
	Id   string     `json:"id"`
	Name string     `json:"name"`
}

// GetTestInfo collects whatever test metadata ctx carries. It reports
// false when there is none at all.
func GetTestInfo(ctx context.Context) (Info, bool) {
	name, nameOk := GetTestName(ctx)
	id, idOk := GetTestId(ctx)
	t, tOk := GetTest(ctx)

	if !nameOk && !idOk && !tOk {
		return Info{}, false
	}

	return Info{
		Test: t,
		Id:   id,
		Name: name,
	}, true
}
