package idwrap

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
)

// IDWrap is the identity type for every persisted entity. It wraps a ULID
// so ids sort by creation time and can be stored as a 16-byte blob.
type IDWrap struct {
	ulid ulid.ULID
}

func New(u ulid.ULID) IDWrap {
	return IDWrap{ulid: u}
}

func NewNow() IDWrap {
	return IDWrap{ulid: ulid.Make()}
}

func NewText(s string) (IDWrap, error) {
	u, err := ulid.Parse(s)
	if err != nil {
		return IDWrap{}, err
	}
	return IDWrap{ulid: u}, nil
}

func NewTextMust(s string) IDWrap {
	u, err := ulid.Parse(s)
	if err != nil {
		panic(err)
	}
	return IDWrap{ulid: u}
}

func NewFromBytes(data []byte) (IDWrap, error) {
	var u ulid.ULID
	err := u.UnmarshalBinary(data)
	return IDWrap{ulid: u}, err
}

func NewFromBytesMust(data []byte) IDWrap {
	id, err := NewFromBytes(data)
	if err != nil {
		panic(err)
	}
	return id
}

func (u IDWrap) String() string {
	return u.ulid.String()
}

func (u IDWrap) Bytes() []byte {
	return u.ulid[:]
}

func (u IDWrap) Compare(other IDWrap) int {
	return u.ulid.Compare(other.ulid)
}

// Time returns the creation time encoded in the ULID.
func (u IDWrap) Time() time.Time {
	return time.UnixMilli(int64(u.ulid.Time()))
}

// SQL driver value
func (u IDWrap) Value() (driver.Value, error) {
	return u.ulid.Value()
}

func (u *IDWrap) Scan(value any) error {
	b, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("idwrap: cannot scan %T", value)
	}
	return u.ulid.UnmarshalBinary(b)
}
