package platform

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/storage"

	"github.com/ytget/imageboost/internal/model"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// Command constants
const (
	OpenCommand    = "open"
	XDGOpenCommand = "xdg-open"
	CmdCommand     = "cmd"
	StartCommand   = "start"
	WindowsCmdFlag = "/c"
)

// SniffLength is how many leading bytes are inspected when the extension
// does not identify the content type
const SniffLength = 512

// Supported image extensions for file dialogs
var (
	ImageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp"}
)

// OpenURL opens a web address with the default system browser
func OpenURL(rawURL string) error {
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return fmt.Errorf("refusing to open non-web URL: %q", rawURL)
	}

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case OSDarwin:
		cmd = exec.Command(OpenCommand, rawURL)
	case OSWindows:
		cmd = exec.Command(CmdCommand, WindowsCmdFlag, StartCommand, "", rawURL)
	case OSLinux:
		cmd = exec.Command(XDGOpenCommand, rawURL)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
	return cmd.Start()
}

// GetPicturesDir returns the user's Pictures directory, or the home
// directory when there is none
func GetPicturesDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	picturesDir := filepath.Join(homeDir, "Pictures")
	if info, err := os.Stat(picturesDir); err == nil && info.IsDir() {
		return picturesDir, nil
	}
	return homeDir, nil
}

// LocalFileFromPath describes a file on disk for upload. The content type
// comes from the extension, or from the leading bytes when that is unknown.
func LocalFileFromPath(path string) (model.LocalFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return model.LocalFile{}, fmt.Errorf("file does not exist: %w", err)
	}
	if info.IsDir() {
		return model.LocalFile{}, fmt.Errorf("%s is a directory", path)
	}

	contentType, err := DetectContentType(path)
	if err != nil {
		return model.LocalFile{}, err
	}

	return model.LocalFile{
		Name:        filepath.Base(path),
		ContentType: contentType,
		Size:        info.Size(),
		Open: func() (io.ReadCloser, error) {
			return os.Open(path)
		},
	}, nil
}

// LocalFilesFromPaths describes several files; unreadable paths are
// reported together and skipped.
func LocalFilesFromPaths(paths []string) ([]model.LocalFile, error) {
	files := make([]model.LocalFile, 0, len(paths))
	var errs []error
	for _, path := range paths {
		file, err := LocalFileFromPath(path)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", path, err))
			continue
		}
		files = append(files, file)
	}
	return files, errors.Join(errs...)
}

// LocalFileFromURI describes a file picked in a dialog or dropped on the
// window. Local files are stat'ed for their size; other URIs report zero.
func LocalFileFromURI(uri fyne.URI) (model.LocalFile, error) {
	if uri == nil {
		return model.LocalFile{}, errors.New("no file selected")
	}
	if uri.Scheme() == "file" {
		file, err := LocalFileFromPath(uri.Path())
		if err != nil {
			return model.LocalFile{}, err
		}
		if mimeType := uri.MimeType(); strings.HasPrefix(mimeType, model.ImageContentTypePrefix) {
			file.ContentType = mimeType
		}
		return file, nil
	}

	return model.LocalFile{
		Name:        uri.Name(),
		ContentType: uri.MimeType(),
		Open: func() (io.ReadCloser, error) {
			return storage.Reader(uri)
		},
	}, nil
}

// DetectContentType returns the MIME type of a file without parameters
func DetectContentType(path string) (string, error) {
	if byExt := mime.TypeByExtension(strings.ToLower(filepath.Ext(path))); byExt != "" {
		mediaType, _, err := mime.ParseMediaType(byExt)
		if err == nil {
			return mediaType, nil
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	head := make([]byte, SniffLength)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	mediaType, _, _ := mime.ParseMediaType(http.DetectContentType(head[:n]))
	return mediaType, nil
}
