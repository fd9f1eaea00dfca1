package service

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/LuisRodriguez27/notex/internal/pkg/logger"
	"github.com/LuisRodriguez27/notex/internal/repository/specification"
	"github.com/LuisRodriguez27/notex/internal/repository/unitofwork"
	"github.com/LuisRodriguez27/notex/pkg/events"
	"github.com/LuisRodriguez27/notex/pkg/filestore"
	"github.com/LuisRodriguez27/notex/pkg/pathutil"
	"github.com/LuisRodriguez27/notex/pkg/richtext"

	"github.com/google/uuid"
)

const sweeperModule = "AttachmentSweeper"

// ResourceExtractor finds the attachment file paths a serialized note
// content still references.
type ResourceExtractor interface {
	ExtractResourcePaths(serialized string) []string
}

type schemeResourceExtractor struct{}

func (schemeResourceExtractor) ExtractResourcePaths(serialized string) []string {
	return richtext.ExtractResourcePaths(serialized)
}

// NewResourceExtractor returns the default extractor, which scans for the
// editor's resource locator scheme.
func NewResourceExtractor() ResourceExtractor {
	return schemeResourceExtractor{}
}

// AttachmentSweeper garbage-collects attachments a note no longer
// references. It runs after a content write has been persisted; nothing it
// does can fail the enclosing update. Per-attachment failures are logged,
// published and skipped, so one stuck file never blocks the rest.
type AttachmentSweeper struct {
	files     *filestore.FileStore
	extractor ResourceExtractor
	bus       *events.Bus
	log       logger.ILogger
}

func NewAttachmentSweeper(
	files *filestore.FileStore,
	extractor ResourceExtractor,
	bus *events.Bus,
	log logger.ILogger,
) *AttachmentSweeper {
	return &AttachmentSweeper{
		files:     files,
		extractor: extractor,
		bus:       bus,
		log:       log,
	}
}

// Sweep compares the note's attachment rows against the references still
// present in serialized content and removes the orphans, row first, then
// file. An attachment stays when its path matches a reference after
// normalization, or when its bare filename still appears anywhere in the
// content (a half-escaped reference still counts as in use).
func (s *AttachmentSweeper) Sweep(ctx context.Context, uow unitofwork.UnitOfWork, noteId uuid.UUID, serialized string) {
	attachments, err := uow.AttachmentRepository().FindAll(ctx, specification.ByNoteID{NoteID: noteId})
	if err != nil {
		s.reportFailure(noteId, "", err)
		return
	}
	if len(attachments) == 0 {
		return
	}

	refs := s.extractor.ExtractResourcePaths(serialized)
	referenced := make(map[string]struct{}, len(refs))
	for _, ref := range refs {
		referenced[pathutil.Normalize(ref)] = struct{}{}
	}

	for _, att := range attachments {
		if _, ok := referenced[pathutil.Normalize(att.Path)]; ok {
			continue
		}
		if base := filepath.Base(att.Path); base != "." && strings.Contains(serialized, base) {
			continue
		}

		if err := uow.AttachmentRepository().Delete(ctx, att.Id); err != nil {
			s.reportFailure(noteId, att.Path, err)
			continue
		}
		if !s.files.Contains(att.Path) {
			// Never unlink outside the managed directory, even when a row
			// points there.
			s.log.Warn(sweeperModule, "attachment path outside store, file left in place", map[string]interface{}{
				"note_id": noteId.String(),
				"path":    att.Path,
			})
			s.publish(events.TypeAttachmentSwept, noteId, att.Path, nil)
			continue
		}
		if err := s.files.Remove(att.Path); err != nil {
			// Row is gone; the file is orphaned on disk but invisible to
			// the app. Report and move on.
			s.reportFailure(noteId, att.Path, err)
			continue
		}

		s.log.Info(sweeperModule, "removed orphaned attachment", map[string]interface{}{
			"note_id": noteId.String(),
			"path":    att.Path,
		})
		s.publish(events.TypeAttachmentSwept, noteId, att.Path, nil)
	}
}

func (s *AttachmentSweeper) reportFailure(noteId uuid.UUID, path string, err error) {
	s.log.Warn(sweeperModule, "attachment sweep failed", map[string]interface{}{
		"note_id": noteId.String(),
		"path":    path,
		"error":   err.Error(),
	})
	s.publish(events.TypeAttachmentSweepFailed, noteId, path, err)
}

func (s *AttachmentSweeper) publish(eventType string, noteId uuid.UUID, path string, cause error) {
	if s.bus == nil {
		return
	}
	data := map[string]interface{}{
		"note_id": noteId.String(),
	}
	if path != "" {
		data["path"] = path
	}
	if cause != nil {
		data["error"] = cause.Error()
	}
	if err := s.bus.Publish(events.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}); err != nil {
		s.log.Warn(sweeperModule, "telemetry publish failed", map[string]interface{}{
			"event": eventType,
			"error": err.Error(),
		})
	}
}
