package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFilaEsperaFluxoCompleto(t *testing.T) {
	agora := time.Now()
	f := &FilaEspera{Status: FilaAguardando}

	assert.True(t, f.Notificar(agora))
	assert.Equal(t, FilaNotificado, f.Status)
	assert.Equal(t, 1, f.TentativasContato)
	assert.Equal(t, agora, *f.UltimoContatoEm)

	assert.True(t, f.ConfirmarInteresse())
	assert.Equal(t, FilaConfirmado, f.Status)

	assert.True(t, f.Converter(42))
	assert.Equal(t, FilaConvertido, f.Status)
	assert.Equal(t, uint(42), *f.AgendamentoID)
	assert.True(t, f.IsTerminal())
}

func TestFilaEsperaRenotificacao(t *testing.T) {
	// A second notification while NOTIFICADO counts another contact attempt
	f := &FilaEspera{Status: FilaAguardando}

	primeira := time.Now()
	assert.True(t, f.Notificar(primeira))

	segunda := primeira.Add(48 * time.Hour)
	assert.True(t, f.Notificar(segunda))
	assert.Equal(t, FilaNotificado, f.Status)
	assert.Equal(t, 2, f.TentativasContato)
	assert.Equal(t, segunda, *f.UltimoContatoEm)
}

func TestFilaEsperaNotificarBloqueado(t *testing.T) {
	agora := time.Now()
	for _, status := range []StatusFilaEspera{FilaConfirmado, FilaConvertido, FilaCancelado, FilaExpirado} {
		f := &FilaEspera{Status: status}
		assert.False(t, f.Notificar(agora), "status %s", status)
		assert.Zero(t, f.TentativasContato)
	}
}

func TestFilaEsperaConfirmarInteresseSomenteDeNotificado(t *testing.T) {
	for _, status := range []StatusFilaEspera{FilaAguardando, FilaConfirmado, FilaConvertido, FilaCancelado, FilaExpirado} {
		f := &FilaEspera{Status: status}
		assert.False(t, f.ConfirmarInteresse(), "status %s", status)
	}
}

func TestFilaEsperaConverterDeQualquerStatusAtivo(t *testing.T) {
	for _, status := range []StatusFilaEspera{FilaAguardando, FilaNotificado, FilaConfirmado} {
		f := &FilaEspera{Status: status}
		assert.True(t, f.Converter(7), "status %s", status)
		assert.Equal(t, FilaConvertido, f.Status)
	}

	for _, status := range []StatusFilaEspera{FilaConvertido, FilaCancelado, FilaExpirado} {
		f := &FilaEspera{Status: status}
		assert.False(t, f.Converter(7), "status %s", status)
		assert.Nil(t, f.AgendamentoID)
	}
}

func TestFilaEsperaCancelar(t *testing.T) {
	f := &FilaEspera{Status: FilaNotificado}
	assert.True(t, f.Cancelar())
	assert.Equal(t, FilaCancelado, f.Status)

	// Terminal entries stay put
	assert.False(t, f.Cancelar())
	assert.Equal(t, FilaCancelado, f.Status)
}

func TestFilaEsperaDiasNaFila(t *testing.T) {
	criado := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	f := &FilaEspera{CriadoEm: criado}

	assert.Equal(t, 0, f.DiasNaFila(criado.Add(12*time.Hour)))
	assert.Equal(t, 1, f.DiasNaFila(criado.Add(25*time.Hour)))
	assert.Equal(t, 30, f.DiasNaFila(criado.AddDate(0, 0, 30)))
}
