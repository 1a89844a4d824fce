package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/meetupaws/flight_route_manager/routes/internal/model"
	"github.com/pkg/errors"
)

// FileRepository serves routes from memory and persists them as a JSON
// array on Flush.
type FileRepository struct {
	*MemoryRepository
	path string
}

func (r *FileRepository) Flush(ctx context.Context) error {
	routes, err := r.List(ctx)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(routes, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), ".routes-*.json")
	if err != nil {
		return errors.Wrapf(err, "flushing %v", r.path)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "flushing %v", r.path)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "flushing %v", r.path)
	}
	return errors.Wrapf(os.Rename(tmp.Name(), r.path), "flushing %v", r.path)
}

func (r *FileRepository) load() error {
	data, err := os.ReadFile(r.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	if err := validateRoutesDocument(data); err != nil {
		return err
	}

	routes := []model.Route{}
	if err := json.Unmarshal(data, &routes); err != nil {
		return err
	}
	for _, route := range routes {
		if err := r.MemoryRepository.Save(context.Background(), route); err != nil {
			return errors.Wrapf(err, "flight %v", route.FlightID)
		}
	}
	return nil
}

// NewFileRepository loads path if it exists. A missing file is an empty
// route list; it is created on the first Flush.
func NewFileRepository(path string) (*FileRepository, error) {
	r := &FileRepository{
		MemoryRepository: NewMemoryRepository(),
		path:             path,
	}
	if err := r.load(); err != nil {
		return nil, errors.Wrapf(err, "loading %v", path)
	}
	return r, nil
}
