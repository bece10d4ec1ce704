package analyzer

// The verification prompt is written in Portuguese because the documents
// and statutes it reasons about are Brazilian legal text; keeping prompt
// and material in the same language measurably improves classification.
const verificationPromptTemplate = `Você é um especialista em direito brasileiro com acesso às leis atualizadas.

Sua tarefa é ANALISAR CRITICAMENTE as citações legais no texto e identificar:

1. ERROS GRAVES: Citações incorretas ou que tratam de assunto diferente
2. IMPRECISÕES: Citações corretas mas com interpretação inadequada
3. DESATUALIZAÇÕES: Artigos revogados ou alterados
4. CITAÇÕES CORRETAS: Validar quando estiver correto

CITAÇÕES ENCONTRADAS:
%s

CONTEÚDO DAS LEIS:
%s

TEXTO A ANALISAR:
%s

INSTRUÇÕES:
- Verifique se o artigo REALMENTE trata do assunto mencionado
- Compare o que o texto DIZ com o que o artigo REALMENTE fala
- Identifique contradições entre citação e conteúdo real
- Seja RIGOROSO e PRECISO

Retorne APENAS JSON válido:
{
  "discrepancias": [
    {
      "tipo": "erro" | "alerta" | "ok",
      "gravidade": "alta" | "média" | "baixa",
      "artigo": "Artigo XX da Lei YYYY",
      "textoOriginal": "trecho do texto",
      "problemaEncontrado": "descrição (null se ok)",
      "artigoCorreto": "artigo correto se aplicável",
      "sugestao": "sugestão ou confirmação"
    }
  ]
}

JSON:`

// noStatuteContent stands in for the statute blob when every portal
// lookup failed; the model still classifies from the text alone.
const noStatuteContent = "Não foi possível buscar o conteúdo das leis."
