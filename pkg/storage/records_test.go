package storage_test

import (
	"context"
	"testing"

	qt "github.com/frankban/quicktest"

	"tgpost_go/models"
	"tgpost_go/pkg/storage"
	"tgpost_go/pkg/storage/storagetest"
)

var channelColumns = []string{"id", "name", "channel_chat_id"}

func TestRecordsRoundTrip(t *testing.T) {
	c := qt.New(t)
	db := storagetest.NewPool(t).DB()
	ctx := context.Background()

	id, err := db.InsertRecord(ctx, "channels", []string{"name", "channel_chat_id"}, []any{"первый", "111"})
	c.Assert(err, qt.IsNil)

	rec, err := db.GetRecord(ctx, "channels", channelColumns, id)
	c.Assert(err, qt.IsNil)
	c.Assert(rec["name"], qt.Equals, "первый")
	c.Assert(rec["channel_chat_id"], qt.Equals, "111")

	c.Assert(db.UpdateRecord(ctx, "channels", id, []string{"name"}, []any{"второй"}), qt.IsNil)
	rec, err = db.GetRecord(ctx, "channels", channelColumns, id)
	c.Assert(err, qt.IsNil)
	c.Assert(rec["name"], qt.Equals, "второй")

	n, err := db.CountRecords(ctx, "channels")
	c.Assert(err, qt.IsNil)
	c.Assert(n, qt.Equals, 1)

	c.Assert(db.DeleteRecord(ctx, "channels", id), qt.IsNil)
	_, err = db.GetRecord(ctx, "channels", channelColumns, id)
	c.Assert(err, qt.ErrorIs, storage.ErrNotFound)
}

func TestRecordsMissingID(t *testing.T) {
	c := qt.New(t)
	db := storagetest.NewPool(t).DB()
	ctx := context.Background()

	c.Assert(db.UpdateRecord(ctx, "channels", 7, []string{"name"}, []any{"x"}), qt.ErrorIs, storage.ErrNotFound)
	c.Assert(db.DeleteRecord(ctx, "channels", 7), qt.ErrorIs, storage.ErrNotFound)
}

func TestInsertRecordColumnMismatch(t *testing.T) {
	c := qt.New(t)
	db := storagetest.NewPool(t).DB()

	_, err := db.InsertRecord(context.Background(), "channels", []string{"name", "channel_chat_id"}, []any{"x"})
	c.Assert(err, qt.ErrorMatches, "insert into channels: 2 columns, 1 values")
}

func TestListRecordsAndOptions(t *testing.T) {
	c := qt.New(t)
	db := storagetest.NewPool(t).DB()
	ctx := context.Background()

	for _, code := range []string{"RU", "KZ", "BY"} {
		_, err := db.InsertRecord(ctx, "countries", []string{"code"}, []any{code})
		c.Assert(err, qt.IsNil)
	}

	page, err := db.ListRecords(ctx, "countries", []string{"id", "code"}, 1, 5)
	c.Assert(err, qt.IsNil)
	c.Assert(page, qt.HasLen, 2)
	c.Assert(page[0]["code"], qt.Equals, "KZ")

	opts, err := db.ListOptions(ctx, "countries", "code")
	c.Assert(err, qt.IsNil)
	c.Assert(opts, qt.HasLen, 3)
	c.Assert(opts[2].Label, qt.Equals, "BY")
}

func TestSessionReleasesConnection(t *testing.T) {
	c := qt.New(t)
	pool := storagetest.NewPool(t)
	ctx := context.Background()

	db, err := pool.Session(ctx)
	c.Assert(err, qt.IsNil)
	c.Assert(pool.SQL.Stats().InUse, qt.Equals, 1)

	_, err = db.CreateChannel(ctx, models.Channel{Name: "сессия", ChannelChatID: "1"})
	c.Assert(err, qt.IsNil)

	c.Assert(db.Close(), qt.IsNil)
	c.Assert(pool.SQL.Stats().InUse, qt.Equals, 0)
	// повторное закрытие безопасно
	c.Assert(db.Close(), qt.IsNil)
}

func TestEnsureSchemaIsIdempotent(t *testing.T) {
	c := qt.New(t)
	pool := storagetest.NewPool(t)

	c.Assert(pool.EnsureSchema(context.Background()), qt.IsNil)
}
