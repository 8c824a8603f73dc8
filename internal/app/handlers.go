package app

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"inkwell/internal/markup"
	"inkwell/internal/session"
)

// handleContentChanged keeps the session in step with the editor and,
// while the document is unbound, mirrors any markup title into the
// window title.
func (a *Application) handleContentChanged(text string) {
	a.session.SetContent(text)
	if !a.session.Bound() {
		a.setTitle(markup.DocumentTitle(text))
	}
}

func (a *Application) handleNew() {
	a.session.Reset()
	a.guiManager.SetContent(a.session.Content())
	a.setTitle(documentDisplayName(a.session))
	a.guiManager.UpdateStatus("New document")
	a.logger.Info("Handlers", "new document created", nil)
}

func (a *Application) handleOpen() {
	fileOpen := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			a.showError("File Open Error", err)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		if err := a.session.Open(path); err != nil {
			a.showError("File Open Error", err)
			return
		}

		name := documentDisplayName(a.session)
		a.guiManager.SetContent(a.session.Content())
		a.setTitle(name)
		a.guiManager.UpdateStatus("Opened " + name)
		a.logger.Info("Handlers", "document opened", map[string]interface{}{
			"path":  path,
			"bytes": len(a.session.Content()),
		})
	}, a.window)
	fileOpen.SetFilter(storage.NewExtensionFileFilter([]string{".doc", ".html", ".htm"}))
	fileOpen.Show()
}

func (a *Application) handleSave(forceDialog bool) {
	if a.session.Bound() && !forceDialog {
		if err := a.session.Save(); err != nil {
			a.showError("File Save Error", err)
			return
		}
		a.afterSave()
		return
	}

	fileSave := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			a.showError("File Save Error", err)
			return
		}
		if writer == nil {
			return
		}
		chosen := writer.URI().Path()
		writer.Close()

		// The dialog pre-creates the chosen file; drop it when the
		// extension rewrite moves the target.
		if resolved := session.EnsureExtension(chosen); resolved != chosen {
			os.Remove(chosen)
		}

		if err := a.session.SaveTo(chosen); err != nil {
			a.showError("File Save Error", err)
			return
		}
		a.afterSave()
	}, a.window)
	fileSave.SetFileName("document.doc")
	fileSave.SetFilter(storage.NewExtensionFileFilter([]string{".doc", ".html"}))
	fileSave.Show()
}

func (a *Application) afterSave() {
	path := a.session.Path()
	name := documentDisplayName(a.session)
	a.setTitle(name)
	a.guiManager.UpdateStatus("Saved " + name)
	dialog.ShowInformation("Saved", "File saved as:\n"+path, a.window)
	a.logger.Info("Handlers", "document saved", map[string]interface{}{"path": path})
}

func (a *Application) handleInsertHeading() {
	offset := a.guiManager.CaretOffset()
	if err := a.session.InsertHeading(offset); err != nil {
		a.showError("Insert Error", err)
		return
	}
	a.guiManager.SetContent(a.session.Content())
	a.guiManager.SetCaretOffset(offset + len([]rune(markup.HeadingFragment)))
	a.logger.Debug("Handlers", "heading inserted", map[string]interface{}{"offset": offset})
}

func (a *Application) handleInsertLink() {
	offset := a.guiManager.CaretOffset()

	urlEntry := widget.NewEntry()
	urlEntry.SetPlaceHolder("https://example.com")
	form := container.NewVBox(widget.NewLabel("URL:"), urlEntry)

	dialog.ShowCustomConfirm("Insert Link", "Next", "Cancel", form, func(confirmed bool) {
		if !confirmed {
			return
		}
		// A blank URL aborts the whole flow before the text prompt.
		if strings.TrimSpace(urlEntry.Text) == "" {
			return
		}
		a.promptLinkText(urlEntry.Text, offset)
	}, a.window)
}

func (a *Application) promptLinkText(targetURL string, offset int) {
	textEntry := widget.NewEntry()
	textEntry.SetText(targetURL)
	form := container.NewVBox(widget.NewLabel("Link text:"), textEntry)

	dialog.ShowCustomConfirm("Insert Link", "Insert", "Cancel", form, func(confirmed bool) {
		if !confirmed {
			return
		}
		if err := a.session.InsertLink(targetURL, textEntry.Text, offset); err != nil {
			a.showError("Insert Error", err)
			return
		}
		fragment := markup.LinkFragment(targetURL, textEntry.Text)
		a.guiManager.SetContent(a.session.Content())
		a.guiManager.SetCaretOffset(offset + len([]rune(fragment)))
		a.logger.Debug("Handlers", "link inserted", map[string]interface{}{"url": targetURL})
	}, a.window)
}

func (a *Application) handleOpenLink() {
	// The caret offset and the text it indexes must come from the same
	// place, so read the editor rather than the session here.
	offset := a.guiManager.CaretOffset()
	href, ok := markup.LinkAt(a.guiManager.Content(), offset)
	if !ok {
		dialog.ShowInformation("Open Link", "No link at the caret position.", a.window)
		return
	}

	target, err := url.Parse(strings.TrimSpace(href))
	if err == nil && target.Scheme == "" {
		err = fmt.Errorf("link has no scheme: %q", href)
	}
	if err != nil {
		a.showError("Malformed URL", err)
		return
	}

	if err := a.fyneApp.OpenURL(target); err != nil {
		a.showError("Open Link Error", err)
		return
	}
	a.logger.Info("Handlers", "link opened", map[string]interface{}{"url": target.String()})
}

func (a *Application) showError(title string, err error) {
	a.logger.Error("UI", err, map[string]interface{}{"title": title})

	// Use fyne.Do to ensure the dialog is shown on the main thread for
	// v2.6+.
	fyne.Do(func() {
		dialog.ShowError(err, a.window)
	})
}
