package deck

import (
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/jessejeter/spanish-tools/internal/conjugation"
	"github.com/jessejeter/spanish-tools/internal/domain"
	"github.com/jessejeter/spanish-tools/internal/gitsource"
	"github.com/jessejeter/spanish-tools/internal/srs"
	"github.com/jessejeter/spanish-tools/internal/storage"
	"github.com/jessejeter/spanish-tools/internal/vocab"
	"github.com/jessejeter/spanish-tools/internal/wordhash"
)

// Options controls a sync run.
type Options struct {
	// ReposDir is where git-hosted decks are cloned.
	ReposDir string
	// GenerateDrills expands verb entries into present-tense conjugation
	// drill cards during reconciliation.
	GenerateDrills bool
	// Now supplies the clock; nil means time.Now.
	Now func() time.Time
}

// SourceType classifies a source path as "git" or "local".
func SourceType(path string) string {
	if strings.HasSuffix(path, ".git") ||
		strings.HasPrefix(path, "git@") ||
		strings.HasPrefix(path, "https://") ||
		strings.HasPrefix(path, "http://") {
		return "git"
	}
	return "local"
}

// RunSync iterates over all sources and reconciles them with the database.
func RunSync(db *storage.DB, opts Options) error {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	slog.Info("Starting sync process for all sources...")
	sources, err := db.AllSources()
	if err != nil {
		return fmt.Errorf("failed to get sources: %w", err)
	}

	if len(sources) == 0 {
		slog.Info("No sources configured. Add one with --add-source <path/or/url.git>")
		return nil
	}

	for _, source := range sources {
		slog.Info("Syncing source", "id", source.ID, "type", source.Type, "path", source.Path)

		sourceToReconcile := source

		if source.Type == "git" {
			localRepoPath, err := gitURLToLocalPath(opts.ReposDir, source.Path)
			if err != nil {
				slog.Error("Error determining local path for git deck", "url", source.Path, "error", err)
				continue
			}

			if err := gitsource.Sync(source.Path, localRepoPath); err != nil {
				slog.Error("Error syncing git deck", "url", source.Path, "error", err)
				continue
			}

			sourceToReconcile.Path = localRepoPath
		}

		reconcileLocalSource(db, &sourceToReconcile, opts)
	}
	slog.Info("Sync process complete.")
	return nil
}

func reconcileLocalSource(db *storage.DB, source *storage.Source, opts Options) {
	var parsedEntries int
	var parseErrors []error
	foundHashes := make(map[string]bool)

	insert := func(entry domain.Entry) {
		entry.Hash = wordhash.Hash(entry)
		parsedEntries++
		foundHashes[entry.Hash] = true

		existing, findErr := db.FindEntryByHash(entry.Hash)
		if findErr != nil {
			parseErrors = append(parseErrors, fmt.Errorf("db check for %s: %w", entry.Hash, findErr))
			return
		}
		if existing == nil {
			slog.Info("New entry found, inserting...", "spanish", entry.Spanish, "hash", entry.Hash)
			item := srs.NewItem(entry.Hash, opts.Now())
			if insertErr := db.InsertEntry(entry, item, source.ID); insertErr != nil {
				parseErrors = append(parseErrors, fmt.Errorf("db insert for %s: %w", entry.Hash, insertErr))
			}
		}
	}

	walkErr := filepath.WalkDir(source.Path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(strings.ToLower(d.Name()), ".csv") {
			fileEntries, parseErr := vocab.ParseFile(path)
			if parseErr != nil {
				parseErrors = append(parseErrors, fmt.Errorf("parsing %s: %w", path, parseErr))
			}
			for _, entry := range fileEntries {
				insert(entry)

				if opts.GenerateDrills && conjugation.IsVerb(entry.PartOfSpeech) {
					drills, drillErr := conjugation.Drills(entry, conjugation.Present)
					if drillErr != nil {
						slog.Warn("Skipping drills for entry", "spanish", entry.Spanish, "error", drillErr)
						continue
					}
					for _, drill := range drills {
						insert(drill)
					}
				}
			}
		}
		return nil
	})

	if walkErr != nil {
		slog.Error("Error walking directory", "path", source.Path, "error", walkErr)
		return
	}

	dbEntries, err := db.EntriesBySource(source.ID)
	if err != nil {
		slog.Error("Error getting entries for source", "source_id", source.ID, "error", err)
		return
	}

	var orphanedEntries int
	for _, dbEntry := range dbEntries {
		if _, found := foundHashes[dbEntry.Hash]; !found {
			slog.Info("Orphaned entry, deleting", "hash", dbEntry.Hash)
			orphanedEntries++
			if err := db.DeleteEntryByHash(dbEntry.Hash); err != nil {
				slog.Warn("Failed to delete orphaned entry", "hash", dbEntry.Hash, "error", err)
			}
		}
	}

	if err := db.TouchSourceScanned(source.ID, opts.Now()); err != nil {
		slog.Warn("Failed to update last scanned for source", "source_id", source.ID, "error", err)
	}

	slog.Info("reconciliation complete",
		"path", source.Path,
		"parsed_entries", parsedEntries,
		"orphaned_deleted", orphanedEntries,
		"errors", len(parseErrors),
	)
}

func gitURLToLocalPath(baseDir, repoURL string) (string, error) {
	parsedURL, err := url.Parse(repoURL)
	if err != nil || (parsedURL.Scheme != "https" && parsedURL.Scheme != "http") {
		// scp-like syntax: git@host:user/repo.git
		if strings.Contains(repoURL, "@") {
			parts := strings.Split(repoURL, ":")
			if len(parts) == 2 {
				hostAndUser := strings.Split(parts[0], "@")
				if len(hostAndUser) == 2 {
					host := hostAndUser[1]
					repoPath := strings.TrimSuffix(parts[1], ".git")
					return filepath.Join(baseDir, host, repoPath), nil
				}
			}
		}
		return "", fmt.Errorf("could not parse git URL: %s", repoURL)
	}

	sanitizedPath := strings.TrimSuffix(parsedURL.Path, ".git")
	return filepath.Join(baseDir, parsedURL.Host, sanitizedPath), nil
}
