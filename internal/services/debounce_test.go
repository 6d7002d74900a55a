package services

import (
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestDebounceOnlyLastOfBurstFires(t *testing.T) {
	d := NewDebouncer(30 * time.Millisecond)

	var got atomic.Int32
	for i := 1; i <= 5; i++ {
		v := int32(i)
		d.Schedule("k", func() { got.Store(v) })
	}

	time.Sleep(100 * time.Millisecond)
	if got.Load() != 5 {
		t.Errorf("fired value = %d, want only the last (5)", got.Load())
	}
}

func TestDebounceKeysAreIndependent(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)

	var fired atomic.Int32
	d.Schedule("a", func() { fired.Add(1) })
	d.Schedule("b", func() { fired.Add(1) })

	time.Sleep(80 * time.Millisecond)
	if fired.Load() != 2 {
		t.Errorf("fired = %d, want 2", fired.Load())
	}
}

func TestDebounceCancel(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)

	var fired atomic.Int32
	d.Schedule("k", func() { fired.Add(1) })
	d.Cancel("k")

	time.Sleep(80 * time.Millisecond)
	if fired.Load() != 0 {
		t.Errorf("cancelled task still fired %d times", fired.Load())
	}
}

func TestParseInputToolsResponse(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{
			name: "first suggestion",
			body: `["SUCCESS",[["ramesh",["रमेश","रामेश"],[],{}]]]`,
			want: "रमेश",
		},
		{
			name:    "failure status",
			body:    `["FAILED_TO_PARSE_REQUEST_BODY"]`,
			wantErr: true,
		},
		{
			name:    "empty groups",
			body:    `["SUCCESS",[]]`,
			wantErr: true,
		},
		{
			name:    "no suggestions",
			body:    `["SUCCESS",[["ramesh",[],[],{}]]]`,
			wantErr: true,
		},
		{
			name:    "not json",
			body:    `<html>`,
			wantErr: true,
		},
	}

	for _, tc := range cases {
		got, err := parseInputToolsResponse(strings.NewReader(tc.body))
		if tc.wantErr {
			if err == nil {
				t.Errorf("%s: expected error, got %q", tc.name, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", tc.name, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%s: got %q, want %q", tc.name, got, tc.want)
		}
	}
}
