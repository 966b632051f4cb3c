package keyring

import "testing"

func TestSetConnectionStringRejectsEmpty(t *testing.T) {
	if err := SetConnectionString(""); err == nil {
		t.Error("SetConnectionString(\"\") should fail")
	}
}

func TestErrorSentinels(t *testing.T) {
	if ErrNotFound == nil || ErrKeyringUnavailable == nil {
		t.Fatal("sentinel errors must be non-nil")
	}
	if ErrNotFound.Error() == ErrKeyringUnavailable.Error() {
		t.Error("sentinel errors should be distinguishable")
	}
}
