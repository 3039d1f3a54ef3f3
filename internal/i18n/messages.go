package i18n

var messages = map[Lang]map[string]string{
	Portuguese: {
		// tables
		"capacity":       "📈 Capacidade Estimada",
		"consumption":    "🧪 Consumo",
		"variable_costs": "🔄 Custos Variáveis (USD/m)",
		"fixed_costs":    "🏷️ Custos Fixos",
		"summary":        "📋 Resumo & ROI",
		"break_even":     "⚖️ Ponto de Equilíbrio",
		"sensitivity":    "📊 Análise de Sensibilidade",
		"scenario":       "🔀 Cenário",

		// columns
		"item":                       "Insumo",
		"metric":                     "Métrica",
		"value":                      "Valor",
		"usd_per_meter":              "USD/m",
		"usd_per_month":              "USD/mês",
		"parameter":                  "Parâmetro",
		"base_value":                 "Valor base",
		"adjusted_value":             "Valor ajustado",
		"base_roi_percent":           "ROI base (%)",
		"adjusted_roi_percent":       "ROI ajustado (%)",
		"base_break_even_meters":     "BE base (m)",
		"adjusted_break_even_meters": "BE ajustado (m)",
		"base":                       "Base",
		"delta":                      "Diferença",
		"monthly":                    "Mensal",
		"annual":                     "Anual",
		"unit":                       "Unidade",

		// capacity
		"average_speed":       "Velocidade média (m/h)",
		"total_hours":         "Horas programadas/mês",
		"productive_hours":    "Horas produtivas/mês",
		"monthly_production":  "Produção mensal (m)",
		"annual_production":   "Produção anual (m)",
		"utilization_percent": "Utilização (%)",

		// consumption
		"ink_liters":             "Tinta (L)",
		"printing_paper_units":   "Papel impressão (un)",
		"protective_paper_units": "Papel proteção (un)",
		"energy_kwh":             "Energia (kWh)",
		"downtime_hours":         "Downtime (h)",
		"downtime_lost_meters":   "Produção perdida (m)",

		// variable costs
		"ink":              "Tinta",
		"printing_paper":   "Papel imp.",
		"protective_paper": "Papel prot.",
		"electricity":      "Eletricidade",
		"total_variable":   "Total Variável",

		// fixed costs
		"salary":                "Salário",
		"printer_depreciation":  "Dep. impr.",
		"calender_depreciation": "Dep. cal.",
		"rent":                  "Aluguel",
		"other":                 "Outros",
		"maintenance":           "Manutenção",
		"total_fixed":           "Total Fixos",

		// summary, break-even, scenario
		"revenue":                 "Receita",
		"variable_cost":           "Custo Var.",
		"fixed_cost":              "Custo Fix.",
		"profit":                  "Lucro",
		"roi_percent":             "ROI (%)",
		"margin":                  "Margem (USD/m)",
		"break_even_meters":       "Ponto de equilíbrio (m)",
		"minimum_viable_price":    "Preço mínimo viável (USD/m)",
		"status":                  "Situação",
		"variable_cost_per_meter": "Custo var. (USD/m)",
		"fixed_cost_per_meter":    "Custo fixo (USD/m)",
		"energy":                  "Energia",
		"fixed_salary":            "Salário",

		"status.above":          "acima do BE",
		"status.at":             "no BE",
		"status.below":          "abaixo do BE",
		"status.not_computable": "não calculável",

		"warn.downtime":     "⏰ Downtime de %.1fh reduz produção em %.0f m.",
		"be.not_computable": "❌ Preço ≤ custo variável - BE não calculável",
		"be.above":          "👍 Produção (%.0f m) acima do BE",
		"be.at":             "⚖️ Produção no BE (%.0f m)",
		"be.below":          "⚠️ Produção (%.0f m) abaixo do BE",

		// fields
		"field.width":               "Largura da impressão (m)",
		"field.speed1":              "Velocidade 1 passada (m/h)",
		"field.speed2":              "Velocidade 2 passadas (m/h)",
		"field.usage1":              "Uso 1 passada (%)",
		"field.shifts":              "Turnos por dia",
		"field.hours":               "Horas por turno",
		"field.days":                "Dias de operação por mês",
		"field.downtime":            "Downtime (h/mês)",
		"field.ink_ml":              "Tinta (ml/m)",
		"field.ink_price":           "Preço tinta (USD/L)",
		"field.printing_waste":      "Perda papel impressão (%)",
		"field.printing_price":      "Preço papel imp. (USD/un)",
		"field.protective_waste":    "Perda papel proteção (%)",
		"field.protective_price":    "Preço papel prot. (USD/un)",
		"field.machine_kw":          "Consumo máquina (kW)",
		"field.electricity_price":   "Preço kWh (USD)",
		"field.salary":              "Salário (USD/mês)",
		"field.printer_investment":  "Invest. máquina (USD)",
		"field.printer_years":       "Depreciação máquina (anos)",
		"field.calender_investment": "Invest. calandra (USD)",
		"field.calender_years":      "Depreciação calandra (anos)",
		"field.rent":                "Aluguel (USD/mês)",
		"field.other_fixed":         "Outros fixos (USD/mês)",
		"field.maintenance":         "Manutenção (USD/mês)",
		"field.sell_price":          "Preço venda (USD/m)",

		// bot
		"msg.welcome": "📊 Calculadora de Custo para Sublimação\n\nUse /show para ver o resultado com os valores padrão e /help para a lista de comandos.",
		"msg.help": "Comandos:\n" +
			"/show - capacidade, custos e resumo\n" +
			"/fields - campos editáveis\n" +
			"/set <campo> <valor> - alterar um campo\n" +
			"/price <usd> - alterar o preço de venda\n" +
			"/breakeven - ponto de equilíbrio\n" +
			"/sensitivity [variação] - análise de sensibilidade\n" +
			"/scenario - comparar cenário\n" +
			"/scenario set <campo> <valor> - alterar o cenário\n" +
			"/scenario reset - descartar o cenário\n" +
			"/export csv|xlsx - exportar relatório\n" +
			"/save, /load, /delete <nome> - perfis\n" +
			"/profiles - listar perfis\n" +
			"/lang pt|en|es - idioma\n" +
			"/reset - voltar aos valores padrão",
		"msg.lang_set":          "✅ Idioma: português",
		"msg.lang_usage":        "Uso: /lang pt|en|es",
		"msg.unknown_command":   "Comando desconhecido. Use /help.",
		"msg.set_usage":         "Uso: /set <campo> <valor>. Veja /fields.",
		"msg.scenario_usage":    "Uso: /scenario set <campo> <valor>. Campos de consumíveis e de horário apenas.",
		"msg.invalid_number":    "Valor numérico inválido: %s",
		"msg.field_set":         "✅ %s = %s",
		"msg.scenario_reset":    "✅ Cenário descartado.",
		"msg.reset":             "✅ Valores padrão restaurados.",
		"msg.export_usage":      "Uso: /export csv|xlsx",
		"msg.name_usage":        "Informe um nome para o perfil.",
		"msg.saved":             "✅ Perfil \"%s\" salvo.",
		"msg.loaded":            "✅ Perfil \"%s\" carregado.",
		"msg.deleted":           "✅ Perfil \"%s\" removido.",
		"msg.no_profiles":       "Nenhum perfil salvo.",
		"msg.profile_not_found": "Perfil \"%s\" não encontrado.",
		"msg.profiles":          "Perfis salvos:",
		"msg.sensitivity_set":   "Variação: %s%%",
		"msg.internal_error":    "Erro interno, tente novamente.",

		"msg.rate_limited":   "Muitas exportações. Tente novamente mais tarde.",
		"msg.fields":         "Campos editáveis (valor atual, faixa):",
		"msg.export_caption": "Relatório de sublimação: %s",
		"msg.menu":           "Escolha um relatório:",
	},
	English: {
		"capacity":       "📈 Estimated Capacity",
		"consumption":    "🧪 Consumption",
		"variable_costs": "🔄 Variable Costs (USD/m)",
		"fixed_costs":    "🏷️ Fixed Costs",
		"summary":        "📋 Summary & ROI",
		"break_even":     "⚖️ Break-even Point",
		"sensitivity":    "📊 Sensitivity Analysis",
		"scenario":       "🔀 Scenario",

		"item":                       "Item",
		"metric":                     "Metric",
		"value":                      "Value",
		"usd_per_meter":              "USD/m",
		"usd_per_month":              "USD/month",
		"parameter":                  "Parameter",
		"base_value":                 "Base value",
		"adjusted_value":             "Adjusted value",
		"base_roi_percent":           "Base ROI (%)",
		"adjusted_roi_percent":       "Adjusted ROI (%)",
		"base_break_even_meters":     "Base BE (m)",
		"adjusted_break_even_meters": "Adjusted BE (m)",
		"base":                       "Base",
		"delta":                      "Delta",
		"monthly":                    "Monthly",
		"annual":                     "Annual",
		"unit":                       "Unit",

		"average_speed":       "Average speed (m/h)",
		"total_hours":         "Scheduled hours/month",
		"productive_hours":    "Productive hours/month",
		"monthly_production":  "Monthly production (m)",
		"annual_production":   "Annual production (m)",
		"utilization_percent": "Utilization (%)",

		"ink_liters":             "Ink (L)",
		"printing_paper_units":   "Print paper (units)",
		"protective_paper_units": "Protection paper (units)",
		"energy_kwh":             "Energy (kWh)",
		"downtime_hours":         "Downtime (h)",
		"downtime_lost_meters":   "Lost production (m)",

		"ink":              "Ink",
		"printing_paper":   "Print Paper",
		"protective_paper": "Protection Paper",
		"electricity":      "Electricity",
		"total_variable":   "Total Variable",

		"salary":                "Salary",
		"printer_depreciation":  "Printer Dep.",
		"calender_depreciation": "Calender Dep.",
		"rent":                  "Rent",
		"other":                 "Others",
		"maintenance":           "Maintenance",
		"total_fixed":           "Total Fixed",

		"revenue":                 "Revenue",
		"variable_cost":           "Var Cost",
		"fixed_cost":              "Fixed Cost",
		"profit":                  "Profit",
		"roi_percent":             "ROI (%)",
		"margin":                  "Margin (USD/m)",
		"break_even_meters":       "Break-even (m)",
		"minimum_viable_price":    "Minimum viable price (USD/m)",
		"status":                  "Status",
		"variable_cost_per_meter": "Variable cost (USD/m)",
		"fixed_cost_per_meter":    "Fixed cost (USD/m)",
		"energy":                  "Energy",
		"fixed_salary":            "Salary",

		"status.above":          "above BE",
		"status.at":             "at BE",
		"status.below":          "below BE",
		"status.not_computable": "not computable",

		"warn.downtime":     "⏰ Downtime of %.1fh reduces production by %.0f m.",
		"be.not_computable": "❌ Price ≤ variable cost - BE not calculable",
		"be.above":          "👍 Production (%.0f m) above BE",
		"be.at":             "⚖️ Production at BE (%.0f m)",
		"be.below":          "⚠️ Production (%.0f m) below BE",

		"field.width":               "Print width (m)",
		"field.speed1":              "Speed 1 pass (m/h)",
		"field.speed2":              "Speed 2 passes (m/h)",
		"field.usage1":              "Usage 1 pass (%)",
		"field.shifts":              "Shifts per day",
		"field.hours":               "Hours per shift",
		"field.days":                "Operating days per month",
		"field.downtime":            "Downtime (h/month)",
		"field.ink_ml":              "Ink (ml/m)",
		"field.ink_price":           "Ink price (USD/L)",
		"field.printing_waste":      "Print paper waste (%)",
		"field.printing_price":      "Print paper price (USD/unit)",
		"field.protective_waste":    "Protection paper waste (%)",
		"field.protective_price":    "Protection paper price (USD/unit)",
		"field.machine_kw":          "Machine power (kW)",
		"field.electricity_price":   "kWh price (USD)",
		"field.salary":              "Salary (USD/month)",
		"field.printer_investment":  "Machine invest. (USD)",
		"field.printer_years":       "Machine depreciation (years)",
		"field.calender_investment": "Calender invest. (USD)",
		"field.calender_years":      "Calender depreciation (years)",
		"field.rent":                "Rent (USD/month)",
		"field.other_fixed":         "Other fixed (USD/month)",
		"field.maintenance":         "Maintenance (USD/month)",
		"field.sell_price":          "Selling price (USD/m)",

		"msg.welcome": "📊 Sublimation Cost Calculator\n\nUse /show to see the result with default values and /help for the command list.",
		"msg.help": "Commands:\n" +
			"/show - capacity, costs and summary\n" +
			"/fields - editable fields\n" +
			"/set <field> <value> - change a field\n" +
			"/price <usd> - change the selling price\n" +
			"/breakeven - break-even point\n" +
			"/sensitivity [variation] - sensitivity analysis\n" +
			"/scenario - compare scenario\n" +
			"/scenario set <field> <value> - change the scenario\n" +
			"/scenario reset - discard the scenario\n" +
			"/export csv|xlsx - export report\n" +
			"/save, /load, /delete <name> - profiles\n" +
			"/profiles - list profiles\n" +
			"/lang pt|en|es - language\n" +
			"/reset - back to default values",
		"msg.lang_set":          "✅ Language: English",
		"msg.lang_usage":        "Usage: /lang pt|en|es",
		"msg.unknown_command":   "Unknown command. Use /help.",
		"msg.set_usage":         "Usage: /set <field> <value>. See /fields.",
		"msg.scenario_usage":    "Usage: /scenario set <field> <value>. Consumable and schedule fields only.",
		"msg.invalid_number":    "Invalid number: %s",
		"msg.field_set":         "✅ %s = %s",
		"msg.scenario_reset":    "✅ Scenario discarded.",
		"msg.reset":             "✅ Default values restored.",
		"msg.export_usage":      "Usage: /export csv|xlsx",
		"msg.name_usage":        "Give the profile a name.",
		"msg.saved":             "✅ Profile \"%s\" saved.",
		"msg.loaded":            "✅ Profile \"%s\" loaded.",
		"msg.deleted":           "✅ Profile \"%s\" deleted.",
		"msg.no_profiles":       "No saved profiles.",
		"msg.profile_not_found": "Profile \"%s\" not found.",
		"msg.profiles":          "Saved profiles:",
		"msg.sensitivity_set":   "Variation: %s%%",
		"msg.internal_error":    "Internal error, please try again.",

		"msg.rate_limited":   "Too many exports. Try again later.",
		"msg.fields":         "Editable fields (current value, range):",
		"msg.export_caption": "Sublimation report: %s",
		"msg.menu":           "Choose a report:",
	},
	Spanish: {
		"capacity":       "📈 Capacidad Estimada",
		"consumption":    "🧪 Consumo",
		"variable_costs": "🔄 Costos Variables (USD/m)",
		"fixed_costs":    "🏷️ Costos Fijos",
		"summary":        "📋 Resumen y ROI",
		"break_even":     "⚖️ Punto de Equilibrio",
		"sensitivity":    "📊 Análisis de Sensibilidad",
		"scenario":       "🔀 Escenario",

		"item":                       "Insumo",
		"metric":                     "Métrica",
		"value":                      "Valor",
		"usd_per_meter":              "USD/m",
		"usd_per_month":              "USD/mes",
		"parameter":                  "Parámetro",
		"base_value":                 "Valor base",
		"adjusted_value":             "Valor ajustado",
		"base_roi_percent":           "ROI base (%)",
		"adjusted_roi_percent":       "ROI ajustado (%)",
		"base_break_even_meters":     "PE base (m)",
		"adjusted_break_even_meters": "PE ajustado (m)",
		"base":                       "Base",
		"delta":                      "Diferencia",
		"monthly":                    "Mensual",
		"annual":                     "Anual",
		"unit":                       "Unidad",

		"average_speed":       "Velocidad media (m/h)",
		"total_hours":         "Horas programadas/mes",
		"productive_hours":    "Horas productivas/mes",
		"monthly_production":  "Producción mensual (m)",
		"annual_production":   "Producción anual (m)",
		"utilization_percent": "Utilización (%)",

		"ink_liters":             "Tinta (L)",
		"printing_paper_units":   "Papel de impresión (un)",
		"protective_paper_units": "Papel de protección (un)",
		"energy_kwh":             "Energía (kWh)",
		"downtime_hours":         "Tiempo inactivo (h)",
		"downtime_lost_meters":   "Producción perdida (m)",

		"ink":              "Tinta",
		"printing_paper":   "Papel de impresión",
		"protective_paper": "Papel de protección",
		"electricity":      "Electricidad",
		"total_variable":   "Total Variable",

		"salary":                "Salario",
		"printer_depreciation":  "Dep. impr.",
		"calender_depreciation": "Dep. cal.",
		"rent":                  "Alquiler",
		"other":                 "Otros",
		"maintenance":           "Mantenimiento",
		"total_fixed":           "Total Fijos",

		"revenue":                 "Ingresos",
		"variable_cost":           "Costo Var.",
		"fixed_cost":              "Costo Fijo",
		"profit":                  "Beneficio",
		"roi_percent":             "ROI (%)",
		"margin":                  "Margen (USD/m)",
		"break_even_meters":       "Punto de equilibrio (m)",
		"minimum_viable_price":    "Precio mínimo viable (USD/m)",
		"status":                  "Estado",
		"variable_cost_per_meter": "Costo var. (USD/m)",
		"fixed_cost_per_meter":    "Costo fijo (USD/m)",
		"energy":                  "Energía",
		"fixed_salary":            "Salario",

		"status.above":          "por encima del PE",
		"status.at":             "en el PE",
		"status.below":          "por debajo del PE",
		"status.not_computable": "no calculable",

		"warn.downtime":     "⏰ Inactividad de %.1fh reduce la producción en %.0f m.",
		"be.not_computable": "❌ Precio ≤ costo variable - PE no calculable",
		"be.above":          "👍 Producción (%.0f m) por encima del PE",
		"be.at":             "⚖️ Producción en el PE (%.0f m)",
		"be.below":          "⚠️ Producción (%.0f m) por debajo del PE",

		"field.width":               "Ancho de impresión (m)",
		"field.speed1":              "Velocidad 1 pasada (m/h)",
		"field.speed2":              "Velocidad 2 pasadas (m/h)",
		"field.usage1":              "Uso 1 pasada (%)",
		"field.shifts":              "Turnos por día",
		"field.hours":               "Horas por turno",
		"field.days":                "Días de operación por mes",
		"field.downtime":            "Tiempo inactividad (h/mes)",
		"field.ink_ml":              "Tinta (ml/m)",
		"field.ink_price":           "Precio tinta (USD/L)",
		"field.printing_waste":      "Merma papel impresión (%)",
		"field.printing_price":      "Precio papel imp. (USD/un)",
		"field.protective_waste":    "Merma papel protección (%)",
		"field.protective_price":    "Precio papel prot. (USD/un)",
		"field.machine_kw":          "Consumo máquina (kW)",
		"field.electricity_price":   "Precio kWh (USD)",
		"field.salary":              "Salario (USD/mes)",
		"field.printer_investment":  "Inversión máquina (USD)",
		"field.printer_years":       "Depreciación máquina (años)",
		"field.calender_investment": "Inversión calandra (USD)",
		"field.calender_years":      "Depreciación calandra (años)",
		"field.rent":                "Alquiler (USD/mes)",
		"field.other_fixed":         "Otros fijos (USD/mes)",
		"field.maintenance":         "Mantenimiento (USD/mes)",
		"field.sell_price":          "Precio de venta (USD/m)",

		"msg.welcome": "📊 Calculadora de Costos para Sublimación\n\nUse /show para ver el resultado con los valores predeterminados y /help para la lista de comandos.",
		"msg.help": "Comandos:\n" +
			"/show - capacidad, costos y resumen\n" +
			"/fields - campos editables\n" +
			"/set <campo> <valor> - cambiar un campo\n" +
			"/price <usd> - cambiar el precio de venta\n" +
			"/breakeven - punto de equilibrio\n" +
			"/sensitivity [variación] - análisis de sensibilidad\n" +
			"/scenario - comparar escenario\n" +
			"/scenario set <campo> <valor> - cambiar el escenario\n" +
			"/scenario reset - descartar el escenario\n" +
			"/export csv|xlsx - exportar informe\n" +
			"/save, /load, /delete <nombre> - perfiles\n" +
			"/profiles - listar perfiles\n" +
			"/lang pt|en|es - idioma\n" +
			"/reset - volver a los valores predeterminados",
		"msg.lang_set":          "✅ Idioma: español",
		"msg.lang_usage":        "Uso: /lang pt|en|es",
		"msg.unknown_command":   "Comando desconocido. Use /help.",
		"msg.set_usage":         "Uso: /set <campo> <valor>. Vea /fields.",
		"msg.scenario_usage":    "Uso: /scenario set <campo> <valor>. Solo campos de consumibles y horario.",
		"msg.invalid_number":    "Valor numérico inválido: %s",
		"msg.field_set":         "✅ %s = %s",
		"msg.scenario_reset":    "✅ Escenario descartado.",
		"msg.reset":             "✅ Valores predeterminados restaurados.",
		"msg.export_usage":      "Uso: /export csv|xlsx",
		"msg.name_usage":        "Indique un nombre para el perfil.",
		"msg.saved":             "✅ Perfil \"%s\" guardado.",
		"msg.loaded":            "✅ Perfil \"%s\" cargado.",
		"msg.deleted":           "✅ Perfil \"%s\" eliminado.",
		"msg.no_profiles":       "No hay perfiles guardados.",
		"msg.profile_not_found": "Perfil \"%s\" no encontrado.",
		"msg.profiles":          "Perfiles guardados:",
		"msg.sensitivity_set":   "Variación: %s%%",
		"msg.internal_error":    "Error interno, intente de nuevo.",

		"msg.rate_limited":   "Demasiadas exportaciones. Inténtalo más tarde.",
		"msg.fields":         "Campos editables (valor actual, rango):",
		"msg.export_caption": "Informe de sublimación: %s",
		"msg.menu":           "Elige un informe:",
	},
}
