// Package session implementa el almacenamiento del carrito por sesión en
// memoria del proceso, con expiración por inactividad.
package session

import (
	"sync"
	"time"

	"github.com/jhoicas/tienda-api/internal/application/carrito"
	"github.com/jhoicas/tienda-api/internal/domain/entity"
)

var _ carrito.CartStore = (*MemoryCartStore)(nil)

type entrada struct {
	items     []entity.CarritoItem
	ultimoUso time.Time
}

// MemoryCartStore guarda los carritos en un mapa protegido por mutex. Cada
// lectura o escritura renueva el TTL; las entradas vencidas se purgan en un
// barrido periódico y también al leerse.
type MemoryCartStore struct {
	mu   sync.Mutex
	data map[string]*entrada
	ttl  time.Duration
	done chan struct{}
}

// NewMemoryCartStore construye el store y arranca el barrido de expiración.
func NewMemoryCartStore(ttl time.Duration) *MemoryCartStore {
	s := &MemoryCartStore{
		data: make(map[string]*entrada),
		ttl:  ttl,
		done: make(chan struct{}),
	}
	go s.barrer()
	return s
}

// Get devuelve una copia de las líneas del carrito. Carrito vencido o
// inexistente devuelve nil.
func (s *MemoryCartStore) Get(sessionID string) []entity.CarritoItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.data[sessionID]
	if !ok {
		return nil
	}
	if time.Since(e.ultimoUso) > s.ttl {
		delete(s.data, sessionID)
		return nil
	}
	e.ultimoUso = time.Now()
	items := make([]entity.CarritoItem, len(e.items))
	copy(items, e.items)
	return items
}

// Put reemplaza el contenido del carrito y renueva el TTL.
func (s *MemoryCartStore) Put(sessionID string, items []entity.CarritoItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copia := make([]entity.CarritoItem, len(items))
	copy(copia, items)
	s.data[sessionID] = &entrada{items: copia, ultimoUso: time.Now()}
}

// Clear elimina el carrito de la sesión.
func (s *MemoryCartStore) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sessionID)
}

// Close detiene el barrido de expiración.
func (s *MemoryCartStore) Close() {
	close(s.done)
}

func (s *MemoryCartStore) barrer() {
	ticker := time.NewTicker(s.ttl / 2)
	defer ticker.Stop()
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.mu.Lock()
			for id, e := range s.data {
				if time.Since(e.ultimoUso) > s.ttl {
					delete(s.data, id)
				}
			}
			s.mu.Unlock()
		}
	}
}
