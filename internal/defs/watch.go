// internal/defs/watch.go
package defs

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 100 * time.Millisecond

// Watcher перечитывает файл определений при его изменении и отдаёт
// свежую библиотеку в канал Updates. Ошибки разбора идут в Errors, старая
// библиотека при этом остаётся в силе у получателя.
type Watcher struct {
	watcher *fsnotify.Watcher
	file    string
	Updates chan *Library
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
	wg      sync.WaitGroup
}

// NewWatcher watches the directory containing file, since editors often
// replace files by rename rather than writing in place.
func NewWatcher(file string) (*Watcher, error) {
	abs, err := filepath.Abs(file)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", file, err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", file, err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("watch %s: %w", file, err)
	}

	watcher := &Watcher{
		watcher: w,
		file:    abs,
		Updates: make(chan *Library, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	watcher.wg.Add(1)
	go watcher.run()
	return watcher, nil
}

// Close stops the watcher goroutine and closes both channels.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		w.wg.Wait()
		close(w.Updates)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()

	// Перечитываем файл только когда события затихли на reloadDebounce:
	// редакторы пишут файл в несколько приёмов.
	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.file {
				continue
			}
			timer.Reset(reloadDebounce)
		case <-timer.C:
			lib, err := Load(w.file)
			if err != nil {
				w.sendErr(err)
				continue
			}
			// Нужна только последняя версия: вытесняем непрочитанную.
			select {
			case <-w.Updates:
			default:
			}
			select {
			case w.Updates <- lib:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendErr(err)
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) sendErr(err error) {
	select {
	case w.Errors <- err:
	default:
	}
}
