package database

import "testing"

func TestRunMigrations_NilDB(t *testing.T) {
	if err := RunMigrations(nil); err == nil {
		t.Error("expected error for nil database")
	}
}
