package dredge

import (
	"strconv"

	"dredgesim/internal/core"
)

// Parameters exposes the live vessel state and instrument bank to the
// HUD as read-only groups.
func (s *Simulation) Parameters() core.ParameterSnapshot {
	v := s.vessel
	inst := s.hydro.Instruments()

	groups := []core.ParameterGroup{
		{
			Name: "Vessel",
			Params: []core.Parameter{
				floatParam("swing_deg", "Swing", v.SwingAngleDeg),
				floatParam("swing_vel", "Swing rate", v.SwingVelDegSec),
				floatParam("ladder_deg", "Ladder", v.LadderAngleDeg),
				floatParam("cutter_depth_ft", "Cutter depth", v.CutterDepthFt()),
				floatParam("cutter_rpm", "Cutter RPM", v.CutterRPM),
				floatParam("pump_rpm", "Pump RPM", v.PumpRPM),
				boolParam("estop", "E-stop", v.EStop),
			},
		},
		{
			Name: "Slurry",
			Params: []core.Parameter{
				floatParam("cv", "Solids Cv", inst.SlurryCv),
				floatParam("sg", "Mixture SG", inst.SlurrySG),
				floatParam("velocity_fts", "Velocity ft/s", inst.VelocityFtSec),
				floatParam("vacuum_psi", "Vacuum PSI", inst.VacuumPSI),
				floatParam("discharge_psi", "Discharge PSI", inst.DischargePSI),
				floatParam("pump_effort", "Pump effort", inst.PumpEffort),
			},
		},
		{
			Name: "Winches",
			Params: []core.Parameter{
				floatParam("swing_winch_psi", "Swing winch PSI", inst.SwingWinchPSI),
				floatParam("ladder_winch_psi", "Ladder winch PSI", inst.LadderWinchPSI),
				floatParam("cutter_psi", "Cutter PSI", inst.CutterPSI),
			},
		},
		{
			Name: "Production",
			Params: []core.Parameter{
				floatParam("prod_cyh", "CY/h", inst.ProductionCYH),
				floatParam("prod_tph", "t/h", inst.ProductionTPH),
				floatParam("total_cy", "Total CY", inst.TotalVolumeCY),
				floatParam("total_tons", "Total tons", inst.TotalTons),
				floatParam("swing_width_ft", "Swing width ft", inst.SwingWidthFt),
				intParam("rows_advanced", "Rows advanced", s.rowsAdvanced()),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func (s *Simulation) rowsAdvanced() int {
	if s.grid == nil {
		return 0
	}
	return s.grid.RowsAdvanced()
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', 2, 64),
	}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}
