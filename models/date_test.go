// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDate_TruncatesToUTCDay(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	d := NewDate(time.Date(2026, time.October, 19, 2, 0, 0, 0, loc))

	// 02:00 at UTC+5 is still the 18th in UTC.
	assert.Equal(t, "2026-10-18", d.String())
	assert.Equal(t, time.UTC, d.Location())
	assert.Zero(t, d.Hour())
}

func TestDate_JSON(t *testing.T) {
	d, err := ParseDate("2023-07-01")
	require.NoError(t, err)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2023-07-01"`, string(data))

	var decoded Date
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, d.Equal(decoded.Time))

	assert.Error(t, json.Unmarshal([]byte(`"07/01/2023"`), &decoded))
	assert.Error(t, json.Unmarshal([]byte(`20230701`), &decoded))
}

func TestDate_Value(t *testing.T) {
	d, err := ParseDate("2023-07-01")
	require.NoError(t, err)

	v, err := d.Value()
	require.NoError(t, err)
	assert.Equal(t, "2023-07-01", v)
}

func TestDate_Scan(t *testing.T) {
	tests := []struct {
		name    string
		src     any
		want    string
		wantErr bool
	}{
		{name: "time.Time from pgx", src: time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC), want: "2023-07-01"},
		{name: "plain string", src: "2023-07-01", want: "2023-07-01"},
		{name: "sqlite timestamp string", src: "2023-07-01 00:00:00+00:00", want: "2023-07-01"},
		{name: "bytes", src: []byte("2023-07-01"), want: "2023-07-01"},
		{name: "null", src: nil, wantErr: true},
		{name: "garbage", src: "not-a-date", wantErr: true},
		{name: "unsupported type", src: int64(1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := d.Scan(tt.src)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.String())
		})
	}
}
