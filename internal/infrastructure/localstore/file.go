// Package localstore persiste la sesión del cliente en disco. Es el
// equivalente del único valor durable que guarda el original: el usuario
// autenticado serializado, releído al arrancar para restaurar la sesión sin
// ida y vuelta de red.
package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/toslinrazafy/cosmetique-client/internal/domain/entity"
)

// FileStorage guarda el usuario como JSON en un archivo (escritura atómica:
// tmp + rename).
type FileStorage struct {
	path string
}

// NewFileStorage construye el storage; crea el directorio padre si falta.
func NewFileStorage(path string) (*FileStorage, error) {
	dir := filepath.Dir(path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("localstore: crear directorio %s: %w", dir, err)
		}
	}
	return &FileStorage{path: path}, nil
}

// Save persiste el usuario actual.
func (s *FileStorage) Save(user *entity.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("localstore: serializar usuario: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return fmt.Errorf("localstore: escribir %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("localstore: renombrar %s: %w", tmp, err)
	}
	return nil
}

// Load relee el usuario persistido. Devuelve (nil, nil) si no hay sesión
// guardada o si el contenido está corrupto: una sesión ilegible equivale a
// no tener sesión.
func (s *FileStorage) Load() (*entity.User, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("localstore: leer %s: %w", s.path, err)
	}
	var user entity.User
	if err := json.Unmarshal(raw, &user); err != nil || user.ID == 0 {
		return nil, nil
	}
	return &user, nil
}

// Clear borra la sesión persistida; borrar lo inexistente no es error.
func (s *FileStorage) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("localstore: borrar %s: %w", s.path, err)
	}
	return nil
}
