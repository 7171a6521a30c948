package viewer

import (
	"BinViewer/internal/cli/model"
	"BinViewer/internal/decryptor"
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Сообщения, которые видит пользователь.
const (
	MsgEmptyPassword = "please enter a password"
	MsgDecryptFailed = "wrong password or corrupted file"
)

var (
	// ErrEmptyPassword — пароль не введён; файл не запрашивается.
	ErrEmptyPassword = decryptor.ErrEmptyPassword
	// ErrDecryptFailed — любой сбой получения или расшифровки файла.
	ErrDecryptFailed = decryptor.ErrDecryptFailed
	// ErrNoSelection — файл не выбран.
	ErrNoSelection = errors.New("no file selected")
	// ErrNotEncrypted — выбранный файл не зашифрован.
	ErrNotEncrypted = errors.New("selected file is not encrypted")
	// ErrNoDownload — нет расшифрованного файла для скачивания.
	ErrNoDownload = errors.New("nothing to download")
)

// Fetcher получает байты файла по пути из списка.
type Fetcher interface {
	Fetch(ctx context.Context, path string) ([]byte, error)
}

// Sink сохраняет скачанный файл и возвращает, куда он записан.
type Sink interface {
	Save(fileName string, data []byte) (string, error)
}

// Viewer выполняет операции просмотра над переданной сессией.
// Параллельные Decrypt для одной сессии не согласуются между собой.
type Viewer struct {
	fetcher   Fetcher
	resources *ResourceStore
	logger    *zap.SugaredLogger
	opts      []decryptor.Option
}

// NewViewer создаёт просмотрщик. opts передаются в decryptor.Decrypt.
func NewViewer(f Fetcher, resources *ResourceStore, logger *zap.SugaredLogger, opts ...decryptor.Option) *Viewer {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Viewer{fetcher: f, resources: resources, logger: logger, opts: opts}
}

// Resources возвращает хранилище временных ресурсов.
func (v *Viewer) Resources() *ResourceStore { return v.resources }

// Open выбирает файл. Для зашифрованного показывает форму пароля,
// для изображения — сразу показывает его.
func (v *Viewer) Open(s *Session, entry model.FileEntry) {
	e := entry
	s.Selected = &e

	switch entry.Type {
	case model.TypeEncrypted:
		s.PasswordForm = true
		s.hideError()
	case model.TypeImage:
		v.show(s, &Content{Kind: ContentImage, URL: entry.Path, FileName: entryBase(entry.Path)})
	}
}

// Decrypt скачивает выбранный файл и расшифровывает его паролем.
// Пустой пароль отклоняется до запроса к серверу.
func (v *Viewer) Decrypt(ctx context.Context, s *Session, password string) (*Content, error) {
	if password == "" {
		s.showError(MsgEmptyPassword)
		return nil, ErrEmptyPassword
	}
	if s.Selected == nil {
		return nil, ErrNoSelection
	}
	if s.Selected.Type != model.TypeEncrypted {
		return nil, ErrNotEncrypted
	}
	entry := *s.Selected

	blob, err := v.fetcher.Fetch(ctx, entry.Path)
	if err != nil {
		return nil, v.fail(s, entry, fmt.Errorf("fetch: %w", err))
	}
	if entry.SHA256 != "" && !strings.EqualFold(decryptor.Checksum(blob), entry.SHA256) {
		return nil, v.fail(s, entry, errors.New("checksum mismatch"))
	}

	res, err := decryptor.Decrypt(blob, password, entry.Path, v.opts...)
	if err != nil {
		return nil, v.fail(s, entry, err)
	}

	url := v.resources.Create(res.Plaintext, res.FileName)
	c := &Content{Kind: ContentDownload, URL: url, FileName: res.FileName, Size: len(res.Plaintext)}
	v.show(s, c)
	s.PasswordForm = false
	s.hideError()

	v.logger.Debugw("Decrypted", "path", entry.Path, "file", res.FileName, "size", len(res.Plaintext))
	return c, nil
}

// fail показывает единое сообщение об ошибке и возвращает ошибку, обёрнутую в ErrDecryptFailed.
func (v *Viewer) fail(s *Session, entry model.FileEntry, err error) error {
	v.logger.Debugw("Decrypt failed", "path", entry.Path, "error", err)
	s.showError(MsgDecryptFailed)
	if errors.Is(err, ErrDecryptFailed) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrDecryptFailed, err)
}

// Cancel скрывает форму пароля и сбрасывает выбор.
func (v *Viewer) Cancel(s *Session) {
	s.PasswordForm = false
	s.hideError()
	s.Selected = nil
}

// Close закрывает панель просмотра и освобождает временный ресурс.
func (v *Viewer) Close(s *Session) {
	if s.Content != nil && s.Content.Kind == ContentDownload {
		v.resources.Revoke(s.Content.URL)
	}
	s.Content = nil
}

// Download сохраняет открытый расшифрованный файл через sink.
func (v *Viewer) Download(s *Session, sink Sink) (string, error) {
	if s.Content == nil || s.Content.Kind != ContentDownload {
		return "", ErrNoDownload
	}
	r, err := v.resources.Get(s.Content.URL)
	if err != nil {
		return "", err
	}
	return sink.Save(r.FileName, r.Data)
}

// show заменяет контент панели, освобождая предыдущий ресурс.
func (v *Viewer) show(s *Session, c *Content) {
	v.Close(s)
	s.Content = c
}

func entryBase(p string) string {
	if i := strings.LastIndex(p, "/"); i >= 0 {
		return p[i+1:]
	}
	return p
}
