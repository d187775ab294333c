package backoff

import (
	"context"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sync/atomic"
	"testing"
	"time"
)

// 成功パターンのテスト
func TestBackoffWrapper_Success(t *testing.T) {
	ctx := context.Background()
	counter := int32(0)

	op := func() (string, error) {
		if atomic.AddInt32(&counter, 1) < 3 {
			return "", errors.New("一時エラー")
		}
		return "ok", nil
	}

	bw := NewBackoff[string](ctx, 0, 0, 1, 5)
	bw.SetDoOperation(op)

	called := int32(0)
	bw.SetNotify(func(err error, duration time.Duration) {
		t.Logf("エラー: %v %s後に再試行します...", err, duration)
		atomic.AddInt32(&called, 1)
	})

	got, err := bw.Exec()
	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Equal(t, int32(3), counter, "リトライ回数が想定外です")
	assert.Equal(t, int32(2), called, "Notifyの呼ばれた回数が想定外です")
}

// 失敗パターンのテスト
func TestBackoffWrapper_Failure(t *testing.T) {
	ctx := context.Background()
	counter := int32(0)

	op := func() (int, error) {
		atomic.AddInt32(&counter, 1)
		return 0, errors.New("常にエラー")
	}

	bw := NewImmediate[int](ctx, 3)
	bw.SetDoOperation(op)

	var lastErr error
	bw.SetNotify(func(err error, duration time.Duration) {
		lastErr = err
	})

	_, err := bw.Exec()
	require.Error(t, err)
	assert.Equal(t, "常にエラー", err.Error())
	assert.LessOrEqual(t, counter, int32(3))
	assert.GreaterOrEqual(t, counter, int32(2))
	require.Error(t, lastErr)
	assert.Equal(t, "常にエラー", lastErr.Error())
}

// リトライしないエラーのテスト
func TestBackoffWrapper_Permanent(t *testing.T) {
	counter := int32(0)
	sentinel := errors.New("致命的エラー")

	bw := NewImmediate[int](context.Background(), 5)
	bw.SetDoOperation(func() (int, error) {
		atomic.AddInt32(&counter, 1)
		return 0, Permanent(sentinel)
	})

	_, err := bw.Exec()
	assert.True(t, errors.Is(err, sentinel))
	assert.Equal(t, int32(1), counter)
}

func TestBackoffWrapper_NoOperation(t *testing.T) {
	_, err := NewImmediate[int](context.Background(), 1).Exec()
	assert.True(t, errors.Is(err, ErrNoOperation))
}
