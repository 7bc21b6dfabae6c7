package moderation

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var punishmentsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "moderation_punishments_total",
	Help: "Punishment attempts by kind and outcome",
}, []string{"punishment", "outcome"})

var auditWriteFailures = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "moderation_audit_write_failures_total",
	Help: "Punishment attempts whose audit record could not be written",
}, []string{"punishment"})

var kicksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "moderation_kicks_total",
	Help: "Kick attempts by outcome",
}, []string{"outcome"})

var gateRejections = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "moderation_gate_rejections_total",
	Help: "Punish invocations stopped before dispatch, by reason",
}, []string{"reason"})
