package tasks

const (
	defaultManagerTitleConstant              = "Mi Dashboard de Tareas de POO"
	menuOptionListLabelConstant              = "Ver todas mis tareas"
	menuOptionAddLabelConstant               = "Añadir nueva tarea"
	menuOptionCompleteLabelConstant          = "Marcar tarea como completada"
	menuOptionExitLabelConstant              = "Volver al menú principal"
	menuPromptConstant                       = "Elige una opción: "
	invalidOptionMessageConstant             = "Opción no válida. Por favor, intenta de nuevo."
	pausePromptConstant                      = "\nPresiona Enter para continuar..."
	exitMessageConstant                      = "Volviendo al menú principal..."
	listHeadingConstant                      = "Listado de Tareas"
	emptyListMessageConstant                 = "\nActualmente no tienes tareas registradas."
	addPromptConstant                        = "Describe la nueva tarea (ej. 'Revisar tema de Herencia'): "
	addSucceededMessageConstant              = "Tarea añadida con éxito."
	addRejectedMessageConstant               = "La descripción de la tarea no puede estar vacía."
	completeHeadingConstant                  = "Marcar Tarea como Completada"
	completePromptConstant                   = "Introduce el número de la tarea a marcar como completada (o 0 para cancelar): "
	nothingToCompleteMessageConstant         = "No hay tareas para marcar como completadas."
	completeSucceededMessageConstant         = "Tarea marcada como completada."
	completeAlreadyDoneMessageConstant       = "Esta tarea ya estaba completada."
	completeCancelledMessageConstant         = "Operación cancelada."
	completeOutOfRangeMessageConstant        = "Número de tarea no válido."
	completeNotNumericMessageConstant        = "Entrada no válida. Por favor, ingresa un número."
	corruptTaskFileWarningTemplateConstant   = "Advertencia: El archivo %s está corrupto o vacío. Se creará uno nuevo."
	menuOptionListKeyConstant                = "1"
	menuOptionAddKeyConstant                 = "2"
	menuOptionCompleteKeyConstant            = "3"
	menuOptionExitKeyConstant                = "0"
	anyInputTransitionKeyConstant            = "*"
	taskLoadErrorTemplateConstant            = "unable to load tasks: %w"
	managerDependencyMissingTemplateConstant = "task manager dependency missing: %s"
)
