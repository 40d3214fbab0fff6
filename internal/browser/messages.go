package browser

const (
	mainMenuHeadingConstant              = "Menu Principal del Dashboard POO"
	mainMenuTasksLabelConstant           = "Gestionar mis Tareas de POO"
	mainMenuExitLabelConstant            = "Salir"
	mainMenuPromptConstant               = "Elige una opción (número para unidad, 'T' para tareas, '0' para salir): "
	mainMenuPausePromptConstant          = "\nPresiona Enter para volver al Menú Principal..."
	exitMessageConstant                  = "Saliendo del programa. ¡Hasta pronto!"
	invalidOptionMessageConstant         = "Opción no válida. Por favor, intenta de nuevo."
	invalidNumberMessageConstant         = "Opción no válida. Por favor, ingresa un número."
	subfolderHeadingTemplateConstant     = "Submenú de %s"
	subfolderEmptyMessageConstant        = "No hay subcarpetas en esta unidad."
	subfolderBackLabelConstant           = "Regresar al menú principal"
	subfolderPromptConstant              = "Elige una subcarpeta o '0' para regresar: "
	subfolderPausePromptConstant         = "\nPresiona Enter para volver al Submenú..."
	unitDirectoryMissingTemplateConstant = "No se encontró la carpeta de la unidad: %s"
	scriptHeadingTemplateConstant        = "Scripts en %s"
	scriptEmptyTemplateConstant          = "No hay scripts (%s) en esta carpeta."
	scriptBackLabelConstant              = "Regresar al submenú anterior"
	scriptHomeLabelConstant              = "Regresar al menú principal"
	scriptPromptConstant                 = "Elige un script, '0' para regresar al submenú, o '9' para ir al menú principal: "
	scriptPausePromptConstant            = "\nPresiona Enter para volver al menú de scripts."
	folderMissingTemplateConstant        = "No se encontró la carpeta: %s"
	directoryReadFailureTemplateConstant = "No se pudo leer la carpeta %s: %v"
	runConfirmationPromptConstant        = "¿Desea ejecutar el script? (1: Sí, 0: No): "
	runDeclinedMessageConstant           = "No se ejecutó el script."
	runInvalidAnswerMessageConstant      = "Opción no válida. Regresando al menú de scripts."
	tasksKeyConstant                     = "T"
	exitKeyConstant                      = "0"
	backKeyConstant                      = "0"
	homeKeyConstant                      = "9"
	runConfirmKeyConstant                = "1"
	runDeclineKeyConstant                = "0"
)
