package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAgendamentoFluxoCompleto(t *testing.T) {
	agora := time.Now()
	a := &Agendamento{Status: StatusAgendado}

	assert.True(t, a.Confirmar("recepcao", agora))
	assert.Equal(t, StatusConfirmado, a.Status)
	assert.NotNil(t, a.ConfirmadoEm)

	assert.True(t, a.IniciarAtendimento("dra.ana"))
	assert.Equal(t, StatusEmAtendimento, a.Status)

	assert.True(t, a.Concluir("dra.ana"))
	assert.Equal(t, StatusConcluido, a.Status)
	assert.True(t, a.IsTerminal())
}

func TestAgendamentoConfirmarSomenteDeAgendado(t *testing.T) {
	agora := time.Now()
	for _, status := range []StatusAgendamento{StatusConfirmado, StatusEmAtendimento, StatusConcluido, StatusCancelado, StatusFaltou} {
		a := &Agendamento{Status: status}
		assert.False(t, a.Confirmar("recepcao", agora), "status %s", status)
		assert.Equal(t, status, a.Status)
	}
}

func TestAgendamentoCancelar(t *testing.T) {
	agora := time.Now()

	tests := []struct {
		status StatusAgendamento
		ok     bool
	}{
		{StatusAgendado, true},
		{StatusConfirmado, true},
		{StatusEmAtendimento, false},
		{StatusConcluido, false},
		{StatusCancelado, false},
		{StatusFaltou, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			a := &Agendamento{Status: tt.status}
			ok := a.Cancelar("paciente desmarcou", "recepcao", agora)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, StatusCancelado, a.Status)
				assert.Equal(t, "paciente desmarcou", a.MotivoCancelamento)
				assert.Equal(t, "recepcao", a.CanceladoPor)
				assert.NotNil(t, a.CanceladoEm)
			}
		})
	}
}

func TestAgendamentoMarcarFalta(t *testing.T) {
	tests := []struct {
		status StatusAgendamento
		ok     bool
	}{
		{StatusAgendado, true},
		{StatusConfirmado, true},
		{StatusEmAtendimento, false},
		{StatusConcluido, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			a := &Agendamento{Status: tt.status}
			assert.Equal(t, tt.ok, a.MarcarFalta("recepcao"))
			if tt.ok {
				assert.Equal(t, StatusFaltou, a.Status)
				assert.True(t, a.IsTerminal())
			}
		})
	}
}

func TestAgendamentoIsTerminal(t *testing.T) {
	terminais := []StatusAgendamento{StatusConcluido, StatusCancelado, StatusFaltou}
	ativos := []StatusAgendamento{StatusAgendado, StatusConfirmado, StatusEmAtendimento}

	for _, status := range terminais {
		assert.True(t, (&Agendamento{Status: status}).IsTerminal(), "status %s", status)
	}
	for _, status := range ativos {
		assert.False(t, (&Agendamento{Status: status}).IsTerminal(), "status %s", status)
	}
}

func TestAgendamentoMarcarLembreteEnviado(t *testing.T) {
	agora := time.Now()
	a := &Agendamento{Status: StatusConfirmado}

	a.MarcarLembreteEnviado(agora)
	assert.True(t, a.LembreteEnviado)
	assert.Equal(t, agora, *a.LembreteEnviadoEm)
}
