package viewer

import "BinViewer/internal/cli/model"

// ContentKind — что сейчас показано в панели просмотра.
type ContentKind string

const (
	ContentDownload ContentKind = "download" // расшифрованный файл, доступный для скачивания
	ContentImage    ContentKind = "image"    // ссылка на изображение из списка
)

// Content — содержимое панели просмотра.
type Content struct {
	Kind     ContentKind
	URL      string // blob:<uuid> для ContentDownload, путь из списка для ContentImage
	FileName string
	Size     int
}

// Session — состояние одного окна просмотра: выбранный файл, видимость формы пароля,
// сообщение об ошибке и открытый контент. Передаётся во все операции Viewer явно.
// Session не потокобезопасна: ею управляет один вызывающий.
type Session struct {
	Selected     *model.FileEntry
	PasswordForm bool
	Error        string
	Content      *Content
}

// NewSession создаёт пустую сессию.
func NewSession() *Session { return &Session{} }

// CurrentPath возвращает путь выбранного файла или "".
func (s *Session) CurrentPath() string {
	if s.Selected == nil {
		return ""
	}
	return s.Selected.Path
}

// CurrentType возвращает тип выбранного файла или "".
func (s *Session) CurrentType() string {
	if s.Selected == nil {
		return ""
	}
	return s.Selected.Type
}

func (s *Session) showError(msg string) {
	s.Error = msg
}

func (s *Session) hideError() {
	s.Error = ""
}
