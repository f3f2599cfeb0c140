package catalog

import (
	"cmp"
	"context"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/llehouerou/arcshelf/internal/tags"
)

const numWorkers = 8

type albumKey struct {
	artist string
	album  string
}

type scannedTrack struct {
	path  string
	disc  int
	track int
	tag   *tags.Tag
}

// Progress reports how many of the discovered files have been read.
type Progress struct {
	Done  int
	Total int
}

// Scan walks the given directories and builds a catalog with one album per
// (album artist, album) pair. Files whose tags cannot be read are skipped.
func Scan(ctx context.Context, paths []string) (*Catalog, error) {
	return ScanWithProgress(ctx, paths, nil)
}

// ScanWithProgress is Scan with progress updates sent on progress. Updates
// are dropped rather than stalling the scan when the receiver is slow. The
// caller owns the channel.
func ScanWithProgress(ctx context.Context, paths []string, progress chan<- Progress) (*Catalog, error) {
	files := discoverFiles(paths)

	jobs := make(chan string)
	results := make(chan scannedTrack)

	var wg sync.WaitGroup
	for range numWorkers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				r := scannedTrack{path: path}
				if t, err := tags.Read(path); err == nil {
					r.disc, r.track, r.tag = t.DiscNumber, t.TrackNumber, t
				}
				results <- r
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, f := range files {
			select {
			case jobs <- f:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	report(progress, Progress{Total: len(files)})
	grouped := make(map[albumKey][]scannedTrack)
	done := 0
	for r := range results {
		done++
		report(progress, Progress{Done: done, Total: len(files)})
		if r.tag == nil {
			continue
		}
		key := albumKey{artist: r.tag.AlbumArtist, album: r.tag.Album}
		grouped[key] = append(grouped[key], r)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &Catalog{Albums: normalize(buildAlbums(grouped))}, nil
}

func report(ch chan<- Progress, p Progress) {
	if ch == nil {
		return
	}
	select {
	case ch <- p:
	default:
	}
}

// discoverFiles returns every music file under the given roots.
func discoverFiles(paths []string) []string {
	var files []string
	for _, root := range paths {
		_ = filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
			// Unreadable entries are skipped so the rest of the tree still scans
			if walkErr != nil {
				return nil //nolint:nilerr // intentionally skipping errors
			}
			if d.IsDir() || !tags.IsMusicFile(path) {
				return nil
			}
			files = append(files, path)
			return nil
		})
	}
	return files
}

func buildAlbums(grouped map[albumKey][]scannedTrack) []Item {
	keys := make([]albumKey, 0, len(grouped))
	for k := range grouped {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b albumKey) int {
		return cmp.Or(cmp.Compare(a.artist, b.artist), cmp.Compare(a.album, b.album))
	})

	albums := make([]Item, 0, len(keys))
	for _, k := range keys {
		tracks := grouped[k]
		slices.SortFunc(tracks, func(a, b scannedTrack) int {
			return cmp.Or(
				cmp.Compare(a.disc, b.disc),
				cmp.Compare(a.track, b.track),
				cmp.Compare(a.path, b.path),
			)
		})

		title := k.album
		if title == "" {
			title = filepath.Base(filepath.Dir(tracks[0].path))
		}
		album := Item{
			Title:  title,
			Artist: k.artist,
			Cover:  tracks[0].path,
		}
		for _, t := range tracks {
			trackTitle := t.tag.Title
			if trackTitle == "" {
				trackTitle = titleFromPath(t.path)
			}
			album.Children = append(album.Children, Item{
				ID:     t.path,
				Title:  trackTitle,
				Artist: t.tag.Artist,
				Cover:  t.path,
			})
		}
		albums = append(albums, album)
	}
	return albums
}
